package v1

import (
	"time"
)

// PricePoint is a price observed at a timestamp.
type PricePoint struct {
	Timestamp time.Time
	Value     float64
}

// ReturnPoint is the log return realised at Timestamp over the previous point.
// LogReturn is NaN when either price is missing or non-positive.
type ReturnPoint struct {
	Timestamp time.Time
	LogReturn float64
}

// DaySeries is the equidistant return series of one trading day.
type DaySeries struct {
	Symbol string
	// Interval is the label of the resampling interval, e.g. "1min".
	Interval string
	Date     time.Time
	Points   []ReturnPoint
}

// Len returns the number of returns in the series.
func (s *DaySeries) Len() int {
	return len(s.Points)
}

// DailySeries is the closing-price return series of a ticker across days.
type DailySeries struct {
	Symbol string
	Points []ReturnPoint
}
