package returns

import (
	"context"
	"time"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
)

// ReturnsRepository stores and reads return series in QuestDB.
type ReturnsRepository interface {
	StoreDay(ctx context.Context, series *v1.DaySeries) error
	StoreDaily(ctx context.Context, series *v1.DailySeries) error
	GetDay(ctx context.Context, symbol, interval string, date time.Time) ([]v1.ReturnPoint, error)
}
