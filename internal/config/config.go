package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"signsheet/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Parser ParserConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ValidLogLevels lists the accepted log.level values.
var ValidLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Debug reports whether debug output, including gin's route dump, is enabled.
func (l *LogConfig) Debug() bool {
	return l.Level == "debug"
}

// RequestLogging reports whether an access line is written per request.
// An unset level logs requests.
func (l *LogConfig) RequestLogging() bool {
	return l.Level == "" || l.Level == "debug" || l.Level == "info"
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ParserConfig holds sign-in sheet parsing settings.
type ParserConfig struct {
	DateFormat  domain.DateFormat `mapstructure:"date_format"`
	MinYear     int               `mapstructure:"min_year"`
	MaxYear     int               `mapstructure:"max_year"`
	MaxPages    int               `mapstructure:"max_pages"`
	Concurrency int               `mapstructure:"concurrency"`
}

// Load reads configuration from environment variables with the SIGNSHEET_ prefix.
// A .env file in the working directory, if present, fills in variables that are
// not already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SIGNSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.max_body_bytes", 1<<20)

	// Log defaults
	v.SetDefault("log.level", "debug")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Parser defaults
	v.SetDefault("parser.date_format", string(domain.DateFormatUS))
	v.SetDefault("parser.min_year", 2000)
	v.SetDefault("parser.max_year", 2100)
	v.SetDefault("parser.max_pages", 20)
	v.SetDefault("parser.concurrency", 4)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "SIGNSHEET_SERVER_PORT",
		"server.read_timeout":     "SIGNSHEET_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "SIGNSHEET_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "SIGNSHEET_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":      "SIGNSHEET_SERVER_ENVIRONMENT",
		"server.max_body_bytes":   "SIGNSHEET_SERVER_MAX_BODY_BYTES",
		"log.level":               "SIGNSHEET_LOG_LEVEL",
		"cors.allowed_origins":    "SIGNSHEET_CORS_ALLOWED_ORIGINS",
		"parser.date_format":      "SIGNSHEET_PARSER_DATE_FORMAT",
		"parser.min_year":         "SIGNSHEET_PARSER_MIN_YEAR",
		"parser.max_year":         "SIGNSHEET_PARSER_MAX_YEAR",
		"parser.max_pages":        "SIGNSHEET_PARSER_MAX_PAGES",
		"parser.concurrency":      "SIGNSHEET_PARSER_CONCURRENCY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SIGNSHEET_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SIGNSHEET_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
		MaxBodyBytes:    v.GetInt64("server.max_body_bytes"),
	}
	cfg.Log = LogConfig{
		Level: strings.ToLower(v.GetString("log.level")),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Parser = ParserConfig{
		DateFormat:  domain.DateFormat(strings.ToLower(v.GetString("parser.date_format"))),
		MinYear:     v.GetInt("parser.min_year"),
		MaxYear:     v.GetInt("parser.max_year"),
		MaxPages:    v.GetInt("parser.max_pages"),
		Concurrency: v.GetInt("parser.concurrency"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if !ValidLogLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if !domain.ValidDateFormats[c.Parser.DateFormat] {
		return fmt.Errorf("parser.date_format: %w: %q", domain.ErrInvalidDateFormat, c.Parser.DateFormat)
	}
	if c.Parser.MinYear <= 0 || c.Parser.MaxYear < c.Parser.MinYear {
		return fmt.Errorf("parser year range %d-%d is invalid", c.Parser.MinYear, c.Parser.MaxYear)
	}
	if c.Parser.MaxPages < 1 {
		return fmt.Errorf("parser.max_pages must be at least 1, got %d", c.Parser.MaxPages)
	}
	if c.Parser.Concurrency < 1 {
		return fmt.Errorf("parser.concurrency must be at least 1, got %d", c.Parser.Concurrency)
	}
	if c.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}
