package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	diagnostics "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/config"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	testCases := []struct {
		name   string
		report diagnostics.DayReport
		want   string
	}{
		{name: "written", report: diagnostics.DayReport{Written: true, EmptyIntervals: "2020-01-02: 3"}, want: OutcomeWritten},
		{name: "skipped orderbook", report: diagnostics.DayReport{SkippedOrderBook: "ob.csv"}, want: OutcomeSkippedOrderBook},
		{name: "skipped message", report: diagnostics.DayReport{SkippedMessage: "msg.csv"}, want: OutcomeSkippedMessage},
		{name: "misaligned", report: diagnostics.DayReport{Misaligned: "ob.csv | msg.csv: 2 != 3"}, want: OutcomeMisaligned},
		{name: "rejected", report: diagnostics.DayReport{Rejected: "2020-01-02: no events"}, want: OutcomeRejected},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Outcome(tc.report))
		})
	}
}

func TestRecorder_Observe(t *testing.T) {
	r := NewRecorder(config.MetricsConfig{Job: "lobster"}, logger.NewNop())

	r.ObserveDay(diagnostics.DayReport{Written: true}, 390, 2)
	r.ObserveDay(diagnostics.DayReport{Written: true}, 210, 0)
	r.ObserveDay(diagnostics.DayReport{Misaligned: "x"}, 0, 0)
	r.ObserveSkippedOrderBook()
	r.ObserveDuration(1500 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.days.WithLabelValues(OutcomeWritten)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.days.WithLabelValues(OutcomeMisaligned)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.days.WithLabelValues(OutcomeSkippedOrderBook)))
	assert.Equal(t, float64(600), testutil.ToFloat64(r.returns))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.emptyIntervals))
	assert.Equal(t, 1.5, testutil.ToFloat64(r.duration))

	count, err := testutil.GatherAndCount(r.Registry(), "lobster_days_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRecorder_Push(t *testing.T) {
	var calls atomic.Int32
	var path atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		path.Store(req.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	r := NewRecorder(config.MetricsConfig{PushgatewayURL: server.URL, Job: "lobster"}, logger.NewNop())
	r.ObserveDay(diagnostics.DayReport{Written: true}, 10, 0)
	r.Push(context.Background())

	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, strings.HasPrefix(path.Load().(string), "/metrics/job/lobster"))
}

func TestRecorder_PushFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	r := NewRecorder(config.MetricsConfig{PushgatewayURL: server.URL, Job: "lobster"}, logger.NewNop())
	assert.NotPanics(t, func() { r.Push(context.Background()) })
}

func TestRecorder_PushWithoutGateway(t *testing.T) {
	r := NewRecorder(config.MetricsConfig{Job: "lobster"}, logger.NewNop())
	assert.NotPanics(t, func() { r.Push(context.Background()) })
}
