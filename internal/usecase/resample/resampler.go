package resample

import (
	"fmt"
	"time"

	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	tradingdayv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/interval"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// Point is one grid point of a resampled day.
type Point struct {
	Timestamp time.Time
	// Source is the last row whose event falls in (previous point, Timestamp],
	// nil when there is none.
	Source *int
	// Row is the row whose quotes represent the point after fill-forward.
	Row int
}

// Result is a day resampled onto an equidistant grid.
type Result struct {
	Date        time.Time
	MarketOpen  time.Duration
	MarketClose time.Duration
	Points      []Point
	Prices      []returnsv1.PricePoint
	// EmptyIntervals counts the filled points after the first one.
	EmptyIntervals int
}

// EmptyIntervalNote returns "<date>: <count>", or "" when no interval was empty.
func (r *Result) EmptyIntervalNote() string {
	if r.EmptyIntervals == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %d", r.Date.Format(util.DateLayout), r.EmptyIntervals)
}

// Resampler samples a trading day's microprice on an equidistant grid.
type Resampler struct {
	interval interval.Interval
}

// NewResampler creates a Resampler for the given interval.
func NewResampler(iv interval.Interval) (*Resampler, error) {
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	return &Resampler{interval: iv}, nil
}

// Resample maps every grid point from the minute of the first event to the
// minute after the last event onto the last row at or before it. Events must
// be sorted ascending.
func (r *Resampler) Resample(day *tradingdayv1.Day) (*Result, error) {
	if day.Len() == 0 {
		return nil, errors.New(errors.EmptyDayError, "no events", day.Date.Format(util.DateLayout))
	}

	for i, event := range day.Events {
		if !event.InDay() {
			return nil, errors.New(errors.ParseError,
				fmt.Sprintf("event %d at %v seconds is outside the trading day", i, event.Seconds),
				day.Date.Format(util.DateLayout))
		}
	}

	offsets := day.Offsets()
	open, close := interval.MarketBounds(offsets[0], offsets[len(offsets)-1])
	if r.interval.GridLen(open, close) <= 0 {
		return nil, errors.New(errors.ParseError,
			fmt.Sprintf("event times %s to %s are out of order", offsets[0], offsets[len(offsets)-1]),
			day.Date.Format(util.DateLayout))
	}
	grid := r.interval.Grid(open, close)

	result := &Result{
		Date:        day.Date,
		MarketOpen:  open,
		MarketClose: close,
		Points:      make([]Point, len(grid)),
		Prices:      make([]returnsv1.PricePoint, len(grid)),
	}

	next := 0
	for k, t := range grid {
		point := Point{Timestamp: day.Date.Add(t)}

		last := -1
		for next < len(offsets) && offsets[next] <= t {
			last = next
			next++
		}

		switch {
		case last >= 0:
			source := last
			point.Source = &source
			point.Row = last
		case k == 0:
			point.Row = 0
		default:
			point.Row = result.Points[k-1].Row
			result.EmptyIntervals++
		}

		result.Points[k] = point
		result.Prices[k] = returnsv1.PricePoint{
			Timestamp: point.Timestamp,
			Value:     day.Rows[point.Row].Microprice(),
		}
	}

	return result, nil
}
