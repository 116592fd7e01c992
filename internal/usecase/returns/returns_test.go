package returns

import (
	"math"
	"testing"
	"time"

	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC)

func series(values ...float64) []returnsv1.PricePoint {
	prices := make([]returnsv1.PricePoint, len(values))
	for i, v := range values {
		prices[i] = returnsv1.PricePoint{Timestamp: t0.Add(time.Duration(i) * time.Minute), Value: v}
	}
	return prices
}

func TestLogReturns(t *testing.T) {
	testCases := []struct {
		name     string
		prices   []returnsv1.PricePoint
		assertFn func(t *testing.T, out []returnsv1.ReturnPoint, err error)
	}{
		{
			name:   "empty",
			prices: nil,
			assertFn: func(t *testing.T, out []returnsv1.ReturnPoint, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.InsufficientDataError)))
			},
		},
		{
			name:   "single price",
			prices: series(100),
			assertFn: func(t *testing.T, out []returnsv1.ReturnPoint, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.InsufficientDataError)))
				assert.Nil(t, out)
			},
		},
		{
			name:   "simple",
			prices: series(100, 110, 99),
			assertFn: func(t *testing.T, out []returnsv1.ReturnPoint, err error) {
				require.NoError(t, err)
				require.Len(t, out, 2)
				assert.Equal(t, t0.Add(time.Minute), out[0].Timestamp)
				assert.InDelta(t, math.Log(110.0/100.0), out[0].LogReturn, 1e-12)
				assert.InDelta(t, math.Log(99.0/110.0), out[1].LogReturn, 1e-12)
			},
		},
		{
			name:   "missing and non-positive prices propagate NaN",
			prices: series(100, math.NaN(), 100, 0, 100, 101),
			assertFn: func(t *testing.T, out []returnsv1.ReturnPoint, err error) {
				require.NoError(t, err)
				require.Len(t, out, 5)
				for _, i := range []int{0, 1, 2, 3} {
					assert.True(t, math.IsNaN(out[i].LogReturn), "index %d", i)
				}
				assert.InDelta(t, math.Log(1.01), out[4].LogReturn, 1e-12)
			},
		},
		{
			name: "sorted by timestamp",
			prices: []returnsv1.PricePoint{
				{Timestamp: t0.Add(2 * time.Minute), Value: 100},
				{Timestamp: t0.Add(3 * time.Minute), Value: 101},
				{Timestamp: t0, Value: 102},
			},
			assertFn: func(t *testing.T, out []returnsv1.ReturnPoint, err error) {
				require.NoError(t, err)
				require.Len(t, out, 2)
				assert.Equal(t, t0, out[0].Timestamp)
				assert.InDelta(t, math.Log(102.0/101.0), out[0].LogReturn, 1e-12)
				assert.Equal(t, t0.Add(3*time.Minute), out[1].Timestamp)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := LogReturns(tc.prices)
			tc.assertFn(t, out, err)
		})
	}
}

func TestLogReturns_Reconstruct(t *testing.T) {
	prices := series(412.13, 412.2, 411.95, 411.95, 413.4, 410.01, 409.5)

	out, err := LogReturns(prices)
	require.NoError(t, err)
	require.Len(t, out, len(prices)-1)

	level := math.Log(prices[0].Value)
	for i, r := range out {
		level += r.LogReturn
		assert.InDelta(t, prices[i+1].Value, math.Exp(level), 1e-9)
	}
}
