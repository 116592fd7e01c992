package returns

import (
	"context"
	"fmt"
	"math"
	"time"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/questdb"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// Repository represents the repository for return series.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new returns repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// StoreDay inserts the returns of one day in a single transaction.
func (r *Repository) StoreDay(ctx context.Context, series *v1.DaySeries) error {
	if series.Len() == 0 {
		return nil
	}

	runID := util.GetRunID(ctx)
	rows := make([][]any, 0, series.Len())
	for _, p := range series.Points {
		rows = append(rows, []any{
			p.Timestamp.UTC(),
			series.Symbol,
			series.Interval,
			util.Midnight(series.Date),
			nullable(p.LogReturn),
			runID,
		})
	}

	if err := r.insert(ctx, equidistantTable, equidistantColumns, rows); err != nil {
		return fmt.Errorf("failed to store returns of %s: %w", series.Date.Format(util.DateLayout), err)
	}
	return nil
}

// StoreDaily inserts the closing-price returns in a single transaction.
func (r *Repository) StoreDaily(ctx context.Context, series *v1.DailySeries) error {
	if len(series.Points) == 0 {
		return nil
	}

	runID := util.GetRunID(ctx)
	rows := make([][]any, 0, len(series.Points))
	for _, p := range series.Points {
		rows = append(rows, []any{p.Timestamp.UTC(), series.Symbol, nullable(p.LogReturn), runID})
	}

	if err := r.insert(ctx, dailyTable, dailyColumns, rows); err != nil {
		return fmt.Errorf("failed to store daily returns: %w", err)
	}
	return nil
}

// GetDay reads back the returns of one day ordered by timestamp. NULL
// returns are read as NaN.
func (r *Repository) GetDay(ctx context.Context, symbol, interval string, date time.Time) ([]v1.ReturnPoint, error) {
	query, args := questdb.NewQueryBuilder().
		Select("ts", "log_return").
		From(equidistantTable).
		Where("symbol = ?", symbol).
		Where("resampling_interval = ?", interval).
		Where("trading_date = ?", util.Midnight(date)).
		OrderBy("ts").
		Build()

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query returns: %w", err)
	}
	defer rows.Close()

	var points []v1.ReturnPoint
	for rows.Next() {
		var (
			ts    time.Time
			value *float64
		)
		if err := rows.Scan(&ts, &value); err != nil {
			return nil, fmt.Errorf("failed to scan return: %w", err)
		}

		point := v1.ReturnPoint{Timestamp: ts.UTC(), LogReturn: math.NaN()}
		if value != nil {
			point.LogReturn = *value
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return points, nil
}

// insert writes rows in batches of insertBatchSize inside one transaction.
func (r *Repository) insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	return questdb.WithTx(ctx, r.client, func(txCtx context.Context) error {
		for start := 0; start < len(rows); start += insertBatchSize {
			end := min(start+insertBatchSize, len(rows))
			builder := questdb.NewInsertBuilder().Into(table).Columns(columns...)
			for _, row := range rows[start:end] {
				builder.Values(row...)
			}
			query, args := builder.Build()
			if err := r.client.Exec(txCtx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
}

// nullable maps NaN to SQL NULL.
func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
