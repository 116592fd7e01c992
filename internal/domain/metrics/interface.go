package metrics

import (
	"context"
	"time"

	diagnosticsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Recorder collects run metrics.
type Recorder interface {
	ObserveDay(report diagnosticsv1.DayReport, written, empty int)
	ObserveSkippedOrderBook()
	ObserveDuration(d time.Duration)
	Push(ctx context.Context)
}
