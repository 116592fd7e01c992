package daily

import (
	"context"
	"sort"

	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook"
	returnsDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns"
	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	tradingdayv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday/v1"
	"github.com/lorenzolucchese/tailriskmanagement/internal/usecase/returns"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// Usecase builds the closing-price log returns of a ticker. The closing
// price of a day is the microprice of the last row of its order book.
type Usecase struct {
	symbol string
	reader orderbook.Reader
	sinks  []returnsDomain.DailySink
	logger logger.Interface
}

// NewUsecase creates a new daily usecase.
func NewUsecase(symbol string, reader orderbook.Reader, sinks []returnsDomain.DailySink, log logger.Interface) *Usecase {
	return &Usecase{
		symbol: symbol,
		reader: reader,
		sinks:  sinks,
		logger: log,
	}
}

// Run reads the closing price of every dated order book of the manifest and
// stores their log returns in date order.
func (u *Usecase) Run(ctx context.Context, manifest *tradingdayv1.Manifest) (*returnsv1.DailySeries, error) {
	for _, name := range manifest.Undated {
		u.logger.WarnContext(ctx, "skipping order book without date", logger.NewField("orderbook", name))
	}

	prices := make([]returnsv1.PricePoint, 0, len(manifest.Days))
	for _, files := range manifest.Days {
		price, ok, err := u.closingPrice(ctx, files)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		if ok {
			prices = append(prices, price)
		}
	}

	sort.SliceStable(prices, func(i, j int) bool {
		return prices[i].Timestamp.Before(prices[j].Timestamp)
	})

	points, err := returns.LogReturns(prices)
	if err != nil {
		u.logger.ErrorContext(ctx, err, logger.NewField("days", len(prices)))
		return nil, errors.TracerFromError(err)
	}

	series := &returnsv1.DailySeries{
		Symbol: u.symbol,
		Points: points,
	}
	for _, sink := range u.sinks {
		if err := sink.StoreDaily(ctx, series); err != nil {
			return nil, errors.TracerFromError(err)
		}
	}

	u.logger.InfoContext(ctx, "daily run completed",
		logger.NewField("days", len(manifest.Days)),
		logger.NewField("closing_prices", len(prices)),
		logger.NewField("returns", len(points)),
	)

	return series, nil
}

// closingPrice returns false when the order book cannot be used.
func (u *Usecase) closingPrice(ctx context.Context, files tradingdayv1.Files) (returnsv1.PricePoint, bool, error) {
	rows, err := u.reader.Read(ctx, files.OrderBookPath)
	if err != nil {
		if errors.SeverityOf(err) != errors.SeverityDay {
			return returnsv1.PricePoint{}, false, err
		}
		u.logger.WarnContext(ctx, "skipping unreadable order book",
			logger.NewField("orderbook", files.OrderBookName()),
			logger.NewField("error", err.Error()),
		)
		return returnsv1.PricePoint{}, false, nil
	}

	if len(rows) == 0 {
		u.logger.WarnContext(ctx, "skipping empty order book", logger.NewField("orderbook", files.OrderBookName()))
		return returnsv1.PricePoint{}, false, nil
	}

	return returnsv1.PricePoint{
		Timestamp: util.Midnight(files.Date),
		Value:     rows[len(rows)-1].Microprice(),
	}, true, nil
}
