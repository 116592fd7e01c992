package v1

import (
	"time"

	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// SecondsPerDay bounds the event times of a trading day.
const SecondsPerDay = 24 * 60 * 60

// Event is one line of a message file. Only its time is used.
type Event struct {
	// Seconds since midnight, with sub-second precision.
	Seconds float64
}

// InDay reports whether the event time falls in [0, SecondsPerDay). NaN never does.
func (e Event) InDay() bool {
	return e.Seconds >= 0 && e.Seconds < SecondsPerDay
}

// Offset returns the event time as an offset from midnight.
func (e Event) Offset() time.Duration {
	return util.SecondsToOffset(e.Seconds)
}

// Time returns the event time on the given day.
func (e Event) Time(day time.Time) time.Time {
	return util.Midnight(day).Add(e.Offset())
}
