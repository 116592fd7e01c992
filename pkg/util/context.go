package util

import (
	"context"
)

type key string

const (
	runIDKey  = key("run-id")
	dayKey    = key("trading-day")
	tickerKey = key("ticker")
)

// WithRunID returns a context with a run id.
// It will generate new run id if the provided id is empty.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = generate()
	}
	return context.WithValue(ctx, runIDKey, id)
}

// GetRunID returns run id from context
// will return empty string if not present
func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithDay returns a context carrying the trading day being processed.
func WithDay(ctx context.Context, day string) context.Context {
	return context.WithValue(ctx, dayKey, day)
}

// GetDay returns the trading day from context
// will return empty string if not present
func GetDay(ctx context.Context) string {
	day, _ := ctx.Value(dayKey).(string)
	return day
}

// WithTicker returns a context with the ticker symbol of the run.
func WithTicker(ctx context.Context, ticker string) context.Context {
	return context.WithValue(ctx, tickerKey, ticker)
}

// GetTicker returns ticker from context
// will return empty string if not present
func GetTicker(ctx context.Context) string {
	ticker, _ := ctx.Value(tickerKey).(string)
	return ticker
}

// Fields returns a map of the key-value pairs that this package has set into `context`.
func Fields(ctx context.Context) map[string]interface{} {
	mapFields := make(map[string]interface{})
	if id := GetRunID(ctx); id != "" {
		mapFields["run_id"] = id
	}
	if day := GetDay(ctx); day != "" {
		mapFields["date"] = day
	}
	if ticker := GetTicker(ctx); ticker != "" {
		mapFields["ticker"] = ticker
	}
	return mapFields
}
