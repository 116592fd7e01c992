package daily

import (
	"context"

	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	tradingdayv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday/v1"
)

// Usecase builds the closing-price return series of a ticker.
type Usecase interface {
	Run(ctx context.Context, manifest *tradingdayv1.Manifest) (*returnsv1.DailySeries, error)
}
