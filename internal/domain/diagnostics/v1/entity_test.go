package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Categories(t *testing.T) {
	record := NewRecord()
	record.EmptyIntervals = append(record.EmptyIntervals, "2020-01-02: 3")
	record.Misaligned = append(record.Misaligned, "a | b: 1 != 2")

	categories := record.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
		assert.NotNil(t, c.Entries)
	}

	assert.Equal(t, []string{
		"skipped_orderbook",
		"skipped_messages",
		"empty_time_intervals",
		"opening_closing_times",
		"misaligned",
		"rejected_days",
	}, names)
	assert.Equal(t, 2, record.Total())
}
