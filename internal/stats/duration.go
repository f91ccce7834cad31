package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/sosodev/duration"
)

// ErrMalformedDuration indicates a duration string that is not valid ISO 8601.
// The upstream substitutes a "PT0S" sentinel when a video has no duration, so
// this mostly fires on genuinely broken data. Callers are expected to fall
// back to a zero duration for the affected video instead of aborting the run.
var ErrMalformedDuration = errors.New("malformed ISO 8601 duration")

// ParseDuration converts an ISO 8601 duration such as "PT1H2M3S" into whole
// seconds.
func ParseDuration(text string) (int64, error) {
	d, err := duration.Parse(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
	}
	return int64(d.ToTimeDuration() / time.Second), nil
}

// MonthKey formats a timestamp as its "YYYY-MM" bucket key. Timestamps are
// treated as UTC with second precision.
func MonthKey(ts time.Time) string {
	return ts.UTC().Format("2006-01")
}

// validMonthKey reports whether key is a well-formed "YYYY-MM" string.
func validMonthKey(key string) bool {
	_, err := time.Parse("2006-01", key)
	return err == nil
}
