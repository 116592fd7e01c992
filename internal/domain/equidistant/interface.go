package equidistant

import (
	"context"

	diagnosticsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
	tradingdayv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday/v1"
)

// Usecase turns the trading days of a manifest into equidistant return series.
type Usecase interface {
	Run(ctx context.Context, manifest *tradingdayv1.Manifest) (*diagnosticsv1.Record, error)
	ProcessDay(ctx context.Context, files tradingdayv1.Files) (diagnosticsv1.DayReport, error)
}
