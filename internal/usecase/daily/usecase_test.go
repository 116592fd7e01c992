package daily

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	orderbookMock "github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook/mock"
	orderbookv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook/v1"
	returnsDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns"
	returnsMock "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/mock"
	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	tradingdayv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(date string, dir string) tradingdayv1.Files {
	d, _ := time.Parse("2006-01-02", date)
	return tradingdayv1.Files{
		Date:          d,
		OrderBookPath: "/in/" + dir + "/SPY_" + date + "_orderbook_10.csv",
		MessagePath:   "/in/" + dir + "/SPY_" + date + "_message_10.csv",
	}
}

func closing(prices ...float64) []orderbookv1.Row {
	out := make([]orderbookv1.Row, len(prices))
	for i, p := range prices {
		out[i] = orderbookv1.Row{AskPrice: p + 0.5, AskSize: 1, BidPrice: p - 0.5, BidSize: 1}
	}
	return out
}

func TestUsecase_Run(t *testing.T) {
	// the 2020-01-03 archive sorts before the 2020-01-02 one
	jan3 := day("2020-01-03", "a")
	jan2 := day("2020-01-02", "b")
	jan6 := day("2020-01-06", "c")
	manifest := &tradingdayv1.Manifest{
		Days:    []tradingdayv1.Files{jan3, jan2, jan6},
		Undated: []string{"SPY_orderbook_10.csv"},
	}

	testCases := []struct {
		name     string
		mockFn   func(reader *orderbookMock.MockReader, sink *returnsMock.MockDailySink)
		assertFn func(t *testing.T, series *returnsv1.DailySeries, err error)
	}{
		{
			name: "success",
			mockFn: func(reader *orderbookMock.MockReader, sink *returnsMock.MockDailySink) {
				reader.EXPECT().Read(gomock.Any(), jan3.OrderBookPath).Return(closing(90, 110), nil)
				reader.EXPECT().Read(gomock.Any(), jan2.OrderBookPath).Return(closing(100), nil)
				reader.EXPECT().Read(gomock.Any(), jan6.OrderBookPath).Return(closing(99), nil)
				sink.EXPECT().StoreDaily(gomock.Any(), gomock.Any()).Return(nil)
			},
			assertFn: func(t *testing.T, series *returnsv1.DailySeries, err error) {
				require.NoError(t, err)
				assert.Equal(t, "SPY", series.Symbol)
				require.Len(t, series.Points, 2)
				assert.Equal(t, jan3.Date, series.Points[0].Timestamp)
				assert.InDelta(t, math.Log(110.0/100.0), series.Points[0].LogReturn, 1e-12)
				assert.Equal(t, jan6.Date, series.Points[1].Timestamp)
				assert.InDelta(t, math.Log(99.0/110.0), series.Points[1].LogReturn, 1e-12)
			},
		},
		{
			name: "unreadable and empty order books are skipped",
			mockFn: func(reader *orderbookMock.MockReader, sink *returnsMock.MockDailySink) {
				reader.EXPECT().Read(gomock.Any(), jan3.OrderBookPath).Return(nil, errors.New(errors.ParseError, "bad", jan3.OrderBookPath))
				reader.EXPECT().Read(gomock.Any(), jan2.OrderBookPath).Return(closing(100), nil)
				reader.EXPECT().Read(gomock.Any(), jan6.OrderBookPath).Return([]orderbookv1.Row{}, nil)
			},
			assertFn: func(t *testing.T, series *returnsv1.DailySeries, err error) {
				assert.Nil(t, series)
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.InsufficientDataError)))
			},
		},
		{
			name: "fatal reader error",
			mockFn: func(reader *orderbookMock.MockReader, sink *returnsMock.MockDailySink) {
				reader.EXPECT().Read(gomock.Any(), jan3.OrderBookPath).Return(nil, context.Canceled)
			},
			assertFn: func(t *testing.T, series *returnsv1.DailySeries, err error) {
				assert.Nil(t, series)
				assert.ErrorIs(t, err, context.Canceled)
			},
		},
		{
			name: "sink failure",
			mockFn: func(reader *orderbookMock.MockReader, sink *returnsMock.MockDailySink) {
				reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return(closing(100), nil).Times(3)
				sink.EXPECT().StoreDaily(gomock.Any(), gomock.Any()).
					Return(errors.NewErrorDetails("disk full", string(errors.GeneralRepositoryError), ""))
			},
			assertFn: func(t *testing.T, series *returnsv1.DailySeries, err error) {
				assert.Nil(t, series)
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.GeneralRepositoryError)))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := orderbookMock.NewMockReader(ctrl)
			sink := returnsMock.NewMockDailySink(ctrl)
			tc.mockFn(reader, sink)

			u := NewUsecase("SPY", reader, []returnsDomain.DailySink{sink}, logger.NewNop())
			series, err := u.Run(context.Background(), manifest)
			tc.assertFn(t, series, err)
		})
	}
}
