package interval

import (
	"time"
)

// FloorMinute truncates an offset from midnight to the whole minute at or before it.
func FloorMinute(offset time.Duration) time.Duration {
	return offset.Truncate(time.Minute)
}

// MarketBounds returns the grid bounds of a day from its first and last event
// offsets: the minute at or before the first event and the minute after the
// minute of the last event.
func MarketBounds(first, last time.Duration) (open, close time.Duration) {
	return FloorMinute(first), FloorMinute(last) + time.Minute
}

// GridLen returns the number of grid points from open to close inclusive.
func (i Interval) GridLen(open, close time.Duration) int {
	if close < open {
		return 0
	}
	return int((close-open)/i.Duration) + 1
}

// Grid returns the offsets open, open+i, ... up to and including close.
func (i Interval) Grid(open, close time.Duration) []time.Duration {
	n := i.GridLen(open, close)
	grid := make([]time.Duration, n)
	for k := range grid {
		grid[k] = open + time.Duration(k)*i.Duration
	}
	return grid
}
