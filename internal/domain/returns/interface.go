package returns

import (
	"context"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Sink receives the equidistant return series of each processed day.
type Sink interface {
	StoreDay(ctx context.Context, series *v1.DaySeries) error
}

// DailySink receives the closing-price return series of a run.
type DailySink interface {
	StoreDaily(ctx context.Context, series *v1.DailySeries) error
}
