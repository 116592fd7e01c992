package resample

import (
	"time"

	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// Clipper restricts resampled prices to the regular trading session.
type Clipper struct {
	open  time.Duration
	close time.Duration
}

// NewClipper creates a Clipper keeping clock times within [open, close].
func NewClipper(open, close time.Duration) *Clipper {
	return &Clipper{open: open, close: close}
}

// Clip keeps the prices whose clock time lies within the session, bounds
// included.
func (c *Clipper) Clip(prices []returnsv1.PricePoint) []returnsv1.PricePoint {
	clipped := make([]returnsv1.PricePoint, 0, len(prices))
	for _, p := range prices {
		clock := util.ClockOffset(p.Timestamp)
		if clock >= c.open && clock <= c.close {
			clipped = append(clipped, p)
		}
	}
	return clipped
}

// ClipResult clips the prices of a resampled day. When the day's market
// bounds differ from the session it also returns "<first> - <last>" of the
// clipped series, or of the unclipped one if nothing survived.
func (c *Clipper) ClipResult(result *Result) (clipped []returnsv1.PricePoint, note string) {
	clipped = c.Clip(result.Prices)
	if result.MarketOpen == c.open && result.MarketClose == c.close {
		return clipped, ""
	}

	span := clipped
	if len(span) == 0 {
		span = result.Prices
	}
	if len(span) == 0 {
		return clipped, ""
	}

	first := span[0].Timestamp.Format(util.TimestampLayout)
	last := span[len(span)-1].Timestamp.Format(util.TimestampLayout)
	return clipped, first + " - " + last
}
