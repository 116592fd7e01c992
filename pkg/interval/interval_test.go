package interval

import (
	"testing"
	"time"

	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Duration
		label    string
		wantErr  bool
	}{
		{name: "named", input: "1m", expected: time.Minute, label: "1min"},
		{name: "named hour", input: "1h", expected: time.Hour, label: "60min"},
		{name: "minute count", input: "5min", expected: 5 * time.Minute, label: "5min"},
		{name: "go duration", input: "30s", expected: 30 * time.Second, label: "30s"},
		{name: "go duration minutes", input: "2m0s", expected: 2 * time.Minute, label: "2min"},
		{name: "sub second", input: "1500ms", expected: 1500 * time.Millisecond, label: "1_5s"},
		{name: "zero", input: "0s", wantErr: true},
		{name: "negative", input: "-1m", wantErr: true},
		{name: "garbage", input: "fortnight", wantErr: true},
		{name: "garbage minutes", input: "xmin", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidIntervalError)))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, i.Duration)
			assert.Equal(t, tc.label, i.Label())
		})
	}
}

func TestMarketBounds(t *testing.T) {
	open, close := MarketBounds(34200*time.Second+189*time.Millisecond, 57599*time.Second+500*time.Millisecond)
	assert.Equal(t, 9*time.Hour+30*time.Minute, open)
	assert.Equal(t, 16*time.Hour, close)

	open, close = MarketBounds(5*time.Second, 95*time.Second)
	assert.Equal(t, time.Duration(0), open)
	assert.Equal(t, 2*time.Minute, close)
}

func TestInterval_Grid(t *testing.T) {
	grid := Interval1m.Grid(0, 2*time.Minute)
	assert.Equal(t, []time.Duration{0, time.Minute, 2 * time.Minute}, grid)

	i, err := Parse("5m")
	require.NoError(t, err)
	grid = i.Grid(0, 7*time.Minute)
	assert.Equal(t, []time.Duration{0, 5 * time.Minute}, grid)
	assert.Equal(t, 2, i.GridLen(0, 7*time.Minute))

	assert.Empty(t, Interval1m.Grid(time.Minute, 0))
}

func TestInterval_GridLenProperty(t *testing.T) {
	for _, i := range AllIntervals {
		for span := time.Duration(0); span <= 7*time.Hour; span += 17 * time.Minute {
			open := 9*time.Hour + 30*time.Minute
			grid := i.Grid(open, open+span)
			assert.Len(t, grid, int(span/i.Duration)+1)
			assert.Equal(t, open, grid[0])
			assert.LessOrEqual(t, grid[len(grid)-1], open+span)
		}
	}
}

func TestGetAllIntervalNames(t *testing.T) {
	assert.Equal(t, []string{"1m", "5m", "10m", "15m", "30m", "1h"}, GetAllIntervalNames())
}
