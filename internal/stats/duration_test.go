package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"PT0S", 0},
		{"PT45S", 45},
		{"PT3M", 180},
		{"PT2M59S", 179},
		{"PT1H", 3600},
		{"PT1H0M1S", 3601},
		{"PT1H2M3S", 3723},
		{"P1DT1S", 86401},
	}

	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseDuration_Malformed(t *testing.T) {
	for _, in := range []string{"", "banana", "1h30m"} {
		got, err := ParseDuration(in)
		assert.ErrorIs(t, err, ErrMalformedDuration, "input %q", in)
		assert.Zero(t, got, "input %q", in)
	}
}

func TestMonthKey(t *testing.T) {
	ts := time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01", MonthKey(ts))

	// Non-UTC timestamps normalize to UTC before bucketing.
	tokyo := time.FixedZone("JST", 9*3600)
	late := time.Date(2024, 2, 1, 3, 0, 0, 0, tokyo) // 2024-01-31T18:00Z
	assert.Equal(t, "2024-01", MonthKey(late))
}

func TestValidMonthKey(t *testing.T) {
	assert.True(t, validMonthKey("2024-01"))
	assert.False(t, validMonthKey(""))
	assert.False(t, validMonthKey("2024-13"))
	assert.False(t, validMonthKey("2024-1"))
	assert.False(t, validMonthKey("January 2024"))
}
