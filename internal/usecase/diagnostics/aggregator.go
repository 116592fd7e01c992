package diagnostics

import (
	"context"
	"sync"

	diagnosticsDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics"
	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
)

// Aggregator accumulates the data-quality exceptions of a run and persists
// them once at the end.
type Aggregator struct {
	mu      sync.Mutex
	record  *v1.Record
	written int
	store   diagnosticsDomain.Store
}

// NewAggregator creates an Aggregator persisting to store.
func NewAggregator(store diagnosticsDomain.Store) *Aggregator {
	return &Aggregator{
		record: v1.NewRecord(),
		store:  store,
	}
}

// Add merges the report of one day.
func (a *Aggregator) Add(report v1.DayReport) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.record
	r.SkippedOrderBooks = appendIf(r.SkippedOrderBooks, report.SkippedOrderBook)
	r.SkippedMessages = appendIf(r.SkippedMessages, report.SkippedMessage)
	r.EmptyIntervals = appendIf(r.EmptyIntervals, report.EmptyIntervals)
	r.NonCanonicalSessions = appendIf(r.NonCanonicalSessions, report.NonCanonicalSession)
	r.Misaligned = appendIf(r.Misaligned, report.Misaligned)
	r.RejectedDays = appendIf(r.RejectedDays, report.Rejected)
	if report.Written {
		a.written++
	}
}

// AddSkippedOrderBook records an order book that could not be used.
func (a *Aggregator) AddSkippedOrderBook(name string) {
	a.Add(v1.DayReport{SkippedOrderBook: name})
}

// Written returns the number of days whose series was stored.
func (a *Aggregator) Written() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.written
}

// Record returns a snapshot of the accumulated record.
func (a *Aggregator) Record() *v1.Record {
	a.mu.Lock()
	defer a.mu.Unlock()

	return &v1.Record{
		SkippedOrderBooks:    append([]string{}, a.record.SkippedOrderBooks...),
		SkippedMessages:      append([]string{}, a.record.SkippedMessages...),
		EmptyIntervals:       append([]string{}, a.record.EmptyIntervals...),
		NonCanonicalSessions: append([]string{}, a.record.NonCanonicalSessions...),
		Misaligned:           append([]string{}, a.record.Misaligned...),
		RejectedDays:         append([]string{}, a.record.RejectedDays...),
	}
}

// Persist saves the record under the given interval label.
func (a *Aggregator) Persist(ctx context.Context, label string) (*v1.Record, error) {
	record := a.Record()
	if err := a.store.Save(ctx, label, record); err != nil {
		return nil, errors.TracerFromError(err)
	}
	return record, nil
}

func appendIf(list []string, entry string) []string {
	if entry == "" {
		return list
	}
	return append(list, entry)
}
