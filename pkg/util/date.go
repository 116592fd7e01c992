package util

import (
	"fmt"
	"math"
	"time"
)

const (
	// DateLayout is the layout of trading dates in file names and diagnostics.
	DateLayout = "2006-01-02"
	// TimestampLayout is the layout of grid timestamps in output files.
	TimestampLayout = "2006-01-02 15:04:05"
	// ClockLayout is the layout of session bounds in configuration.
	ClockLayout = "15:04"
)

// Midnight returns the start of the calendar day of t, in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SecondsToOffset converts fractional seconds since midnight to a duration,
// rounded to the nearest nanosecond.
func SecondsToOffset(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// ClockOffset returns the time elapsed since midnight of t's own day.
func ClockOffset(t time.Time) time.Duration {
	return t.Sub(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()))
}

// ParseClock parses "HH:MM" into an offset from midnight.
func ParseClock(clock string) (time.Duration, error) {
	parsed, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}
