package returns

import (
	"math"
	"sort"

	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
)

// LogReturns differences the log of consecutive prices. The i-th return is
// stamped with the timestamp of prices[i+1]. Missing or non-positive prices
// yield NaN. The result is sorted by timestamp.
func LogReturns(prices []returnsv1.PricePoint) ([]returnsv1.ReturnPoint, error) {
	if len(prices) < 2 {
		return nil, errors.New(errors.InsufficientDataError, "at least two prices are required", "prices")
	}

	out := make([]returnsv1.ReturnPoint, 0, len(prices)-1)
	prev := logPrice(prices[0].Value)
	for _, p := range prices[1:] {
		cur := logPrice(p.Value)
		out = append(out, returnsv1.ReturnPoint{
			Timestamp: p.Timestamp,
			LogReturn: cur - prev,
		})
		prev = cur
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}

func logPrice(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return math.NaN()
	}
	return math.Log(v)
}
