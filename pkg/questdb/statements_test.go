package questdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatements(t *testing.T) {
	testCases := []struct {
		name   string
		script string
		want   []string
	}{
		{
			name:   "multiple statements",
			script: "CREATE TABLE b (ts TIMESTAMP);\n  CREATE TABLE c (ts TIMESTAMP);\n",
			want:   []string{"CREATE TABLE b (ts TIMESTAMP)", "CREATE TABLE c (ts TIMESTAMP)"},
		},
		{
			name:   "multi line statement with comments",
			script: "-- create a\nCREATE TABLE a (\n  ts TIMESTAMP\n) TIMESTAMP(ts);\n\n-- trailing\n",
			want:   []string{"CREATE TABLE a (\nts TIMESTAMP\n) TIMESTAMP(ts)"},
		},
		{
			name:   "missing final semicolon",
			script: "DROP TABLE a",
			want:   []string{"DROP TABLE a"},
		},
		{
			name:   "nothing",
			script: " ; \n-- only a comment\n",
			want:   nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Statements(tc.script))
		})
	}
}
