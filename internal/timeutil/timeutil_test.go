package timeutil_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signsheet/internal/timeutil"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"8:00", "08:00", true},
		{"08:00", "08:00", true},
		{"17:30", "17:30", true},
		{"800", "08:00", true},
		{"1700", "17:00", true},
		{"0000", "00:00", true},
		{"2359", "23:59", true},
		{" 9:15 ", "09:15", true},
		{"2500", "", false},
		{"2400", "", false},
		{"960", "", false},
		{"24:00", "", false},
		{"12:60", "", false},
		{"12", "", false},
		{"12345", "", false},
		{"8:0", "", false},
		{"8.00", "", false},
		{"", "", false},
		{"John", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := timeutil.Normalize(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 1, 15, 30, 59} {
			for _, in := range []string{
				fmt.Sprintf("%d:%02d", h, m),
				fmt.Sprintf("%02d:%02d", h, m),
				fmt.Sprintf("%d%02d", h, m),
				fmt.Sprintf("%02d%02d", h, m),
			} {
				once, ok := timeutil.Normalize(in)
				require.True(t, ok, in)
				twice, ok := timeutil.Normalize(once)
				require.True(t, ok, once)
				assert.Equal(t, once, twice, in)
			}
		}
	}
}

func TestNormalize_RejectsOutOfRange(t *testing.T) {
	for h := 24; h < 100; h += 7 {
		_, ok := timeutil.Normalize(fmt.Sprintf("%d:00", h))
		assert.False(t, ok, h)
		_, ok = timeutil.Normalize(fmt.Sprintf("%d00", h))
		assert.False(t, ok, h)
	}
	for m := 60; m < 100; m += 9 {
		_, ok := timeutil.Normalize(fmt.Sprintf("10:%d", m))
		assert.False(t, ok, m)
		_, ok = timeutil.Normalize(fmt.Sprintf("10%d", m))
		assert.False(t, ok, m)
	}
}

func TestMinutes(t *testing.T) {
	m, ok := timeutil.Minutes("08:30")
	require.True(t, ok)
	assert.Equal(t, 510, m)

	m, ok = timeutil.Minutes("1700")
	require.True(t, ok)
	assert.Equal(t, 1020, m)

	_, ok = timeutil.Minutes("bad")
	assert.False(t, ok)
}

func TestRollForwardIfNeeded(t *testing.T) {
	t.Run("afternoon_end_written_as_morning", func(t *testing.T) {
		assert.Equal(t, "15:30", timeutil.RollForwardIfNeeded("13:00", "3:30"))
	})

	t.Run("end_after_start_unchanged", func(t *testing.T) {
		assert.Equal(t, "17:00", timeutil.RollForwardIfNeeded("08:00", "17:00"))
	})

	t.Run("end_hour_after_noon_unchanged", func(t *testing.T) {
		assert.Equal(t, "13:00", timeutil.RollForwardIfNeeded("22:00", "13:00"))
	})

	t.Run("same_minute_unchanged", func(t *testing.T) {
		assert.Equal(t, "08:00", timeutil.RollForwardIfNeeded("08:00", "08:00"))
	})

	t.Run("missing_values", func(t *testing.T) {
		assert.Equal(t, "", timeutil.RollForwardIfNeeded("08:00", ""))
		assert.Equal(t, "5:00", timeutil.RollForwardIfNeeded("", "5:00"))
	})

	t.Run("unparseable_unchanged", func(t *testing.T) {
		assert.Equal(t, "5:00", timeutil.RollForwardIfNeeded("noon", "5:00"))
	})
}

func TestIsValidHHMM(t *testing.T) {
	assert.True(t, timeutil.IsValidHHMM("9:05"))
	assert.True(t, timeutil.IsValidHHMM("23:59"))
	assert.False(t, timeutil.IsValidHHMM("24:00"))
	assert.False(t, timeutil.IsValidHHMM("0905"))
}

func TestAutoFormat(t *testing.T) {
	assert.Equal(t, "6:45", timeutil.AutoFormat("645"))
	assert.Equal(t, "15:30", timeutil.AutoFormat("1530"))
	assert.Equal(t, "15:30", timeutil.AutoFormat("15:30"))
	assert.Equal(t, "12", timeutil.AutoFormat("12"))
}

func TestFilterInput(t *testing.T) {
	assert.Equal(t, "12:30", timeutil.FilterInput("12:30pm"))
	assert.Equal(t, "08:15", timeutil.FilterInput(" 08:15:00"))
	assert.Equal(t, "", timeutil.FilterInput("abc"))
}
