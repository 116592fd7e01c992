package v1

import (
	"testing"
	"time"

	messagev1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/message/v1"
	orderbookv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay(t *testing.T) {
	files := Files{
		Date:          time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		OrderBookPath: "/in/a/SPY_2020-01-02_orderbook_1.csv",
		MessagePath:   "/in/a/SPY_2020-01-02_message_1.csv",
	}

	testCases := []struct {
		name     string
		events   []messagev1.Event
		rows     []orderbookv1.Row
		assertFn func(t *testing.T, day *Day, err error)
	}{
		{
			name:   "aligned",
			events: []messagev1.Event{{Seconds: 34200.5}, {Seconds: 34201}},
			rows:   []orderbookv1.Row{{}, {}},
			assertFn: func(t *testing.T, day *Day, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, day.Len())
				assert.Equal(t, []time.Duration{9*time.Hour + 30*time.Minute + 500*time.Millisecond, 9*time.Hour + 30*time.Minute + time.Second}, day.Offsets())
			},
		},
		{
			name:   "misaligned",
			events: []messagev1.Event{{Seconds: 1}},
			rows:   []orderbookv1.Row{{}, {}},
			assertFn: func(t *testing.T, day *Day, err error) {
				assert.Nil(t, day)
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.AlignmentError)))
				assert.EqualError(t, err, "SPY_2020-01-02_orderbook_1.csv | SPY_2020-01-02_message_1.csv: 2 != 1")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			day, err := NewDay(files, tc.events, tc.rows)
			tc.assertFn(t, day, err)
		})
	}
}

func TestFiles_Names(t *testing.T) {
	files := Files{
		Date:          time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		OrderBookPath: "/in/a/x_orderbook.csv",
		MessagePath:   "/in/a/x_message.csv",
	}
	assert.Equal(t, "2020-01-02", files.DateString())
	assert.Equal(t, "x_orderbook.csv", files.OrderBookName())
	assert.Equal(t, "x_message.csv", files.MessageName())
}
