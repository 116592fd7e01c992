package equidistant

import (
	"context"
	"fmt"
	"time"

	diagnosticsDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics"
	diagnosticsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/message"
	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/metrics"
	"github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook"
	returnsDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns"
	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	tradingdayv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday/v1"
	"github.com/lorenzolucchese/tailriskmanagement/internal/usecase/diagnostics"
	"github.com/lorenzolucchese/tailriskmanagement/internal/usecase/resample"
	"github.com/lorenzolucchese/tailriskmanagement/internal/usecase/returns"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/interval"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
	"golang.org/x/sync/errgroup"
)

// Config holds the parameters of an equidistant run.
type Config struct {
	Symbol       string
	Interval     interval.Interval
	SessionOpen  time.Duration
	SessionClose time.Duration
	Workers      int
}

// Usecase is the equidistant return pipeline.
type Usecase struct {
	symbol  string
	label   string
	workers int

	orderBookReader orderbook.Reader
	messageReader   message.Reader
	resampler       *resample.Resampler
	clipper         *resample.Clipper
	sinks           []returnsDomain.Sink
	store           diagnosticsDomain.Store
	metrics         metrics.Recorder
	logger          logger.Interface
}

// NewUsecase creates a new equidistant usecase. Every sink receives every
// stored day, in order.
func NewUsecase(
	cfg Config,
	orderBookReader orderbook.Reader,
	messageReader message.Reader,
	sinks []returnsDomain.Sink,
	store diagnosticsDomain.Store,
	recorder metrics.Recorder,
	log logger.Interface,
) (*Usecase, error) {
	resampler, err := resample.NewResampler(cfg.Interval)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &Usecase{
		symbol:          cfg.Symbol,
		label:           cfg.Interval.Label(),
		workers:         workers,
		orderBookReader: orderBookReader,
		messageReader:   messageReader,
		resampler:       resampler,
		clipper:         resample.NewClipper(cfg.SessionOpen, cfg.SessionClose),
		sinks:           sinks,
		store:           store,
		metrics:         recorder,
		logger:          log,
	}, nil
}

// Run processes every day of the manifest and persists the diagnostics once
// all of them succeeded. Day-level failures are recorded, anything else
// aborts the run.
func (u *Usecase) Run(ctx context.Context, manifest *tradingdayv1.Manifest) (*diagnosticsv1.Record, error) {
	start := time.Now()
	aggregator := diagnostics.NewAggregator(u.store)

	for _, name := range manifest.Undated {
		aggregator.AddSkippedOrderBook(name)
		u.metrics.ObserveSkippedOrderBook()
	}

	reports := make([]diagnosticsv1.DayReport, len(manifest.Days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, files := range manifest.Days {
		g.Go(func() error {
			report, err := u.ProcessDay(gctx, files)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		u.logger.ErrorContext(ctx, err, logger.NewField("interval", u.label))
		return nil, errors.TracerFromError(err)
	}

	for _, report := range reports {
		aggregator.Add(report)
	}

	record, err := aggregator.Persist(ctx, u.label)
	if err != nil {
		return nil, err
	}

	u.metrics.ObserveDuration(time.Since(start))
	u.metrics.Push(ctx)

	u.logger.InfoContext(ctx, "equidistant run completed",
		logger.NewField("interval", u.label),
		logger.NewField("days", len(manifest.Days)),
		logger.NewField("written", aggregator.Written()),
		logger.NewField("skipped_orderbooks", len(record.SkippedOrderBooks)),
		logger.NewField("skipped_messages", len(record.SkippedMessages)),
		logger.NewField("misaligned", len(record.Misaligned)),
		logger.NewField("rejected", len(record.RejectedDays)),
		logger.NewField("duration", time.Since(start).String()),
	)

	return record, nil
}

// ProcessDay runs the pipeline of one trading day. The returned error is
// non-nil only when the run must stop; day-level problems end up in the
// report.
func (u *Usecase) ProcessDay(ctx context.Context, files tradingdayv1.Files) (diagnosticsv1.DayReport, error) {
	ctx = util.WithDay(ctx, files.DateString())
	report := diagnosticsv1.DayReport{Date: files.DateString()}
	fields := []logger.Field{
		logger.NewField("orderbook", files.OrderBookName()),
		logger.NewField("message", files.MessageName()),
	}

	rows, err := u.orderBookReader.Read(ctx, files.OrderBookPath)
	if err != nil {
		if errors.SeverityOf(err) != errors.SeverityDay {
			return report, errors.TracerFromError(err)
		}
		u.logger.WarnContext(ctx, "skipping unreadable order book", append(fields, logger.NewField("error", err.Error()))...)
		report.SkippedOrderBook = files.OrderBookName()
		u.metrics.ObserveDay(report, 0, 0)
		return report, nil
	}

	events, err := u.messageReader.Read(ctx, files.MessagePath)
	if err != nil {
		if errors.SeverityOf(err) != errors.SeverityDay {
			return report, errors.TracerFromError(err)
		}
		u.logger.WarnContext(ctx, "skipping unreadable message file", append(fields, logger.NewField("error", err.Error()))...)
		report.SkippedMessage = files.MessageName()
		u.metrics.ObserveDay(report, 0, 0)
		return report, nil
	}

	day, err := tradingdayv1.NewDay(files, events, rows)
	if err != nil {
		u.logger.ErrorContext(ctx, err, fields...)
		report.Misaligned = err.Error()
		u.metrics.ObserveDay(report, 0, 0)
		return report, nil
	}

	result, err := u.resampler.Resample(day)
	if err != nil {
		return u.reject(ctx, report, err, 0, fields)
	}
	report.EmptyIntervals = result.EmptyIntervalNote()

	prices, note := u.clipper.ClipResult(result)
	report.NonCanonicalSession = note

	points, err := returns.LogReturns(prices)
	if err != nil {
		return u.reject(ctx, report, err, result.EmptyIntervals, fields)
	}

	series := &returnsv1.DaySeries{
		Symbol:   u.symbol,
		Interval: u.label,
		Date:     day.Date,
		Points:   points,
	}
	for _, sink := range u.sinks {
		if err := sink.StoreDay(ctx, series); err != nil {
			return report, errors.TracerFromError(err)
		}
	}

	report.Written = true
	u.metrics.ObserveDay(report, series.Len(), result.EmptyIntervals)
	u.logger.DebugContext(ctx, "day written",
		append(fields,
			logger.NewField("returns", series.Len()),
			logger.NewField("empty_intervals", result.EmptyIntervals),
		)...,
	)

	return report, nil
}

func (u *Usecase) reject(ctx context.Context, report diagnosticsv1.DayReport, err error, empty int, fields []logger.Field) (diagnosticsv1.DayReport, error) {
	if errors.SeverityOf(err) != errors.SeverityDay {
		return report, errors.TracerFromError(err)
	}

	reason := err.Error()
	if details, ok := errors.DetailsOf(err); ok {
		reason = details.Message
	}
	report.Rejected = fmt.Sprintf("%s: %s", report.Date, reason)

	u.logger.WarnContext(ctx, "rejecting day", append(fields, logger.NewField("reason", reason))...)
	u.metrics.ObserveDay(report, 0, empty)
	return report, nil
}
