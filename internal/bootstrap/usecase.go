package bootstrap

import (
	dailyDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/daily"
	equidistantDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/equidistant"
	mergeDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/merge"
	"github.com/lorenzolucchese/tailriskmanagement/internal/infrastructure/filesystem"
	dailyUc "github.com/lorenzolucchese/tailriskmanagement/internal/usecase/daily"
	equidistantUc "github.com/lorenzolucchese/tailriskmanagement/internal/usecase/equidistant"
	mergeUc "github.com/lorenzolucchese/tailriskmanagement/internal/usecase/merge"
)

// Usecase holds the pipelines of the binary.
type Usecase struct {
	EquidistantUsecase equidistantDomain.Usecase
	DailyUsecase       dailyDomain.Usecase
	MergeUsecase       mergeDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() error {
	pipeline := b.Config.Pipeline

	iv, err := pipeline.ResamplingInterval()
	if err != nil {
		return err
	}
	open, close, err := pipeline.Session()
	if err != nil {
		return err
	}

	equidistant, err := equidistantUc.NewUsecase(
		equidistantUc.Config{
			Symbol:       pipeline.Ticker,
			Interval:     iv,
			SessionOpen:  open,
			SessionClose: close,
			Workers:      pipeline.Workers,
		},
		b.Repository.OrderBookReader,
		b.Repository.MessageReader,
		b.daySinks(),
		b.Repository.DiagnosticsStore,
		b.Repository.Metrics,
		b.Logger,
	)
	if err != nil {
		return err
	}

	b.Usecase.EquidistantUsecase = equidistant
	b.Usecase.DailyUsecase = dailyUc.NewUsecase(pipeline.Ticker, b.Repository.OrderBookReader, b.dailySinks(), b.Logger)
	b.Usecase.MergeUsecase = mergeUc.NewUsecase(
		b.Repository.Merger,
		pipeline.EquidistantDir(),
		filesystem.DayFilePattern(iv.Label()),
		pipeline.MergedOutputPath(iv.Label()),
		b.Logger,
	)
	return nil
}
