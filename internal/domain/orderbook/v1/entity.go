package v1

import "math"

// Row is the level-1 state of the book right after one message event.
type Row struct {
	AskPrice float64
	AskSize  float64
	BidPrice float64
	BidSize  float64
}

// Microprice returns the size-weighted mid price of the row.
// It is NaN when both sides are empty.
func (r Row) Microprice() float64 {
	size := r.AskSize + r.BidSize
	if size == 0 {
		return math.NaN()
	}
	return (r.AskPrice*r.AskSize + r.BidPrice*r.BidSize) / size
}
