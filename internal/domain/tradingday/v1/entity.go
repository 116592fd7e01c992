package v1

import (
	"fmt"
	"path/filepath"
	"time"

	messagev1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/message/v1"
	orderbookv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// Files is the pair of capture files of one trading day.
type Files struct {
	Date          time.Time
	OrderBookPath string
	MessagePath   string
}

// DateString returns the trading date as YYYY-MM-DD.
func (f Files) DateString() string {
	return f.Date.Format(util.DateLayout)
}

// OrderBookName returns the base name of the order-book file.
func (f Files) OrderBookName() string {
	return filepath.Base(f.OrderBookPath)
}

// MessageName returns the base name of the message file.
func (f Files) MessageName() string {
	return filepath.Base(f.MessagePath)
}

// Manifest is the result of scanning an input directory.
type Manifest struct {
	// Days in lexical order of their order-book paths.
	Days []Files
	// Undated lists order-book paths without a parseable date.
	Undated []string
}

// Day holds the loaded contents of one trading day.
// Events[i] is the message that produced Rows[i].
type Day struct {
	Date   time.Time
	Events []messagev1.Event
	Rows   []orderbookv1.Row
}

// NewDay pairs events with rows, returning an alignment error when their
// counts differ.
func NewDay(files Files, events []messagev1.Event, rows []orderbookv1.Row) (*Day, error) {
	if len(events) != len(rows) {
		return nil, errors.NewErrorDetailsWithObject(
			fmt.Sprintf("%d != %d", len(rows), len(events)),
			string(errors.AlignmentError),
			files.OrderBookName()+" | "+files.MessageName(),
			files,
		)
	}

	return &Day{
		Date:   util.Midnight(files.Date),
		Events: events,
		Rows:   rows,
	}, nil
}

// Len returns the number of events of the day.
func (d *Day) Len() int {
	return len(d.Events)
}

// Offsets returns the event times as offsets from midnight.
func (d *Day) Offsets() []time.Duration {
	offsets := make([]time.Duration, len(d.Events))
	for i, event := range d.Events {
		offsets[i] = event.Offset()
	}
	return offsets
}
