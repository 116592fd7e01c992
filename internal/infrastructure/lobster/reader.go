package lobster

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	messagev1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/message/v1"
	orderbookv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
)

// orderBookColumns is the number of columns of a level-1 LOBSTER order book:
// ask price, ask size, bid price, bid size.
const orderBookColumns = 4

// OrderBookReader reads level-1 LOBSTER order-book files.
type OrderBookReader struct{}

// NewOrderBookReader creates a new OrderBookReader.
func NewOrderBookReader() *OrderBookReader {
	return &OrderBookReader{}
}

// Read parses every row of the order-book file at path.
func (r *OrderBookReader) Read(ctx context.Context, path string) ([]orderbookv1.Row, error) {
	var rows []orderbookv1.Row
	err := readCSV(ctx, path, orderBookColumns, func(record []string) error {
		values, err := parseFloats(record)
		if err != nil {
			return err
		}
		rows = append(rows, orderbookv1.Row{
			AskPrice: values[0],
			AskSize:  values[1],
			BidPrice: values[2],
			BidSize:  values[3],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MessageReader reads the event times of LOBSTER message files.
type MessageReader struct{}

// NewMessageReader creates a new MessageReader.
func NewMessageReader() *MessageReader {
	return &MessageReader{}
}

// Read parses the first column of every line of the message file at path.
func (r *MessageReader) Read(ctx context.Context, path string) ([]messagev1.Event, error) {
	var events []messagev1.Event
	err := readCSV(ctx, path, -1, func(record []string) error {
		seconds, err := parseFloat(record[0])
		if err != nil {
			return err
		}
		event := messagev1.Event{Seconds: seconds}
		if !event.InDay() {
			return fmt.Errorf("event time %q outside the trading day", record[0])
		}
		events = append(events, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// readCSV streams the headerless csv file at path into fn. columns < 0
// accepts any number of columns. Every failure is reported as a parse error
// on path.
func readCSV(ctx context.Context, path string, columns int, fn func(record []string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return parseError(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = columns
	reader.ReuseRecord = true

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return parseError(path, err)
		}
		if err := fn(record); err != nil {
			return parseError(path, fmt.Errorf("line %d: %w", line, err))
		}
	}
}

func parseFloats(record []string) ([]float64, error) {
	values := make([]float64, len(record))
	for i, field := range record {
		v, err := parseFloat(field)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parseFloat(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric field %q", field)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite field %q", field)
	}
	return v, nil
}

func parseError(path string, err error) error {
	return errors.NewErrorDetailsWithObject(err.Error(), string(errors.ParseError), path, err)
}
