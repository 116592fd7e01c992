package questdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder_Build(t *testing.T) {
	testCases := []struct {
		name      string
		build     func() QueryBuilder
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "select all",
			build:     func() QueryBuilder { return NewQueryBuilder().From("daily_returns") },
			wantQuery: "SELECT * FROM daily_returns",
			wantArgs:  []any{},
		},
		{
			name: "conditions and ordering",
			build: func() QueryBuilder {
				return NewQueryBuilder().
					Select("ts", "log_return").
					From("equidistant_returns").
					Where("symbol = ?", "SPY").
					Where("ts BETWEEN ? AND ?", 1, 2).
					OrderBy("ts").
					OrderBy("symbol", true)
			},
			wantQuery: "SELECT ts, log_return FROM equidistant_returns WHERE symbol = $1 AND ts BETWEEN $2 AND $3 ORDER BY ts ASC, symbol DESC",
			wantArgs:  []any{"SPY", 1, 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := tc.build().Build()
			assert.Equal(t, tc.wantQuery, query)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestInsertBuilder_Build(t *testing.T) {
	query, args := NewInsertBuilder().
		Into("t").
		Columns("a", "b").
		Values(1, "x").
		Values(2, nil).
		Build()

	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2), ($3, $4)", query)
	assert.Equal(t, []any{1, "x", 2, nil}, args)
}
