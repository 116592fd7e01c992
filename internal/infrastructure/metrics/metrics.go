package metrics

import (
	"context"
	"time"

	diagnostics "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/config"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Day outcomes used as the value of the "outcome" label.
const (
	OutcomeWritten          = "written"
	OutcomeSkippedOrderBook = "skipped_orderbook"
	OutcomeSkippedMessage   = "skipped_message"
	OutcomeMisaligned       = "misaligned"
	OutcomeRejected         = "rejected"
)

// Recorder collects the metrics of one run on a private registry.
type Recorder struct {
	registry *prometheus.Registry
	config   config.MetricsConfig
	logger   logger.Interface

	days           *prometheus.CounterVec
	returns        prometheus.Counter
	emptyIntervals prometheus.Counter
	duration       prometheus.Gauge
}

// NewRecorder creates a Recorder and registers its collectors.
func NewRecorder(cfg config.MetricsConfig, log logger.Interface) *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		config:   cfg,
		logger:   log,
		days: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lobster_days_total",
				Help: "Trading days processed, by outcome",
			},
			[]string{"outcome"},
		),
		returns: factory.NewCounter(prometheus.CounterOpts{
			Name: "lobster_returns_written_total",
			Help: "Log returns written to the sinks",
		}),
		emptyIntervals: factory.NewCounter(prometheus.CounterOpts{
			Name: "lobster_empty_intervals_total",
			Help: "Grid points filled forward because no event fell in their interval",
		}),
		duration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lobster_run_duration_seconds",
			Help: "Wall clock duration of the last run",
		}),
	}
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveDay counts a day under its outcome. written is the number of
// returns stored for the day and empty the number of filled grid points.
func (r *Recorder) ObserveDay(report diagnostics.DayReport, written, empty int) {
	r.days.WithLabelValues(Outcome(report)).Inc()
	r.returns.Add(float64(written))
	r.emptyIntervals.Add(float64(empty))
}

// ObserveSkippedOrderBook counts an order book that never reached a pipeline.
func (r *Recorder) ObserveSkippedOrderBook() {
	r.days.WithLabelValues(OutcomeSkippedOrderBook).Inc()
}

// ObserveDuration records the duration of the run.
func (r *Recorder) ObserveDuration(d time.Duration) {
	r.duration.Set(d.Seconds())
}

// Push sends every collector to the configured Pushgateway. Nothing is sent
// when no gateway is configured. Failures are logged and swallowed.
func (r *Recorder) Push(ctx context.Context) {
	if r.config.PushgatewayURL == "" {
		r.logger.DebugContext(ctx, "metrics pushgateway not configured, skipping push")
		return
	}

	err := push.New(r.config.PushgatewayURL, r.config.Job).
		Gatherer(r.registry).
		PushContext(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to push metrics",
			logger.NewField("pushgateway", r.config.PushgatewayURL),
			logger.NewField("error", err.Error()),
		)
		return
	}

	r.logger.InfoContext(ctx, "metrics pushed", logger.NewField("pushgateway", r.config.PushgatewayURL))
}

// Outcome maps a day report to its metric label.
func Outcome(report diagnostics.DayReport) string {
	switch {
	case report.SkippedOrderBook != "":
		return OutcomeSkippedOrderBook
	case report.SkippedMessage != "":
		return OutcomeSkippedMessage
	case report.Misaligned != "":
		return OutcomeMisaligned
	case report.Written:
		return OutcomeWritten
	default:
		return OutcomeRejected
	}
}
