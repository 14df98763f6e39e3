package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signsheet/internal/config"
	"signsheet/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Debug())
	assert.True(t, cfg.Log.RequestLogging())
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, domain.DateFormatUS, cfg.Parser.DateFormat)
	assert.Equal(t, 2000, cfg.Parser.MinYear)
	assert.Equal(t, 2100, cfg.Parser.MaxYear)
	assert.Equal(t, 20, cfg.Parser.MaxPages)
	assert.Equal(t, 4, cfg.Parser.Concurrency)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SIGNSHEET_SERVER_ENVIRONMENT", "production")
	t.Setenv("SIGNSHEET_PARSER_DATE_FORMAT", "ISO")
	t.Setenv("SIGNSHEET_PARSER_MAX_PAGES", "5")
	t.Setenv("SIGNSHEET_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, domain.DateFormatISO, cfg.Parser.DateFormat)
	assert.Equal(t, 5, cfg.Parser.MaxPages)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)

	t.Setenv("SIGNSHEET_SERVER_PORT", ":7000")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"date_format", "SIGNSHEET_PARSER_DATE_FORMAT", "eu"},
		{"year_range", "SIGNSHEET_PARSER_MIN_YEAR", "2200"},
		{"max_pages", "SIGNSHEET_PARSER_MAX_PAGES", "0"},
		{"concurrency", "SIGNSHEET_PARSER_CONCURRENCY", "0"},
		{"max_body_bytes", "SIGNSHEET_SERVER_MAX_BODY_BYTES", "0"},
		{"log_level", "SIGNSHEET_LOG_LEVEL", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			cfg, err := config.Load()
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

func TestLoad_LogLevel(t *testing.T) {
	tests := []struct {
		level          string
		debug          bool
		requestLogging bool
	}{
		{"DEBUG", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Setenv("SIGNSHEET_LOG_LEVEL", tt.level)
			cfg, err := config.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.debug, cfg.Log.Debug())
			assert.Equal(t, tt.requestLogging, cfg.Log.RequestLogging())
		})
	}
}
