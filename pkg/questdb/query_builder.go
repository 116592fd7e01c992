package questdb

import (
	"fmt"
	"strings"
)

// QueryBuilder builds SELECT statements with positional parameters.
type QueryBuilder interface {
	Select(columns ...string) QueryBuilder
	From(table string) QueryBuilder
	Where(condition string, args ...any) QueryBuilder
	OrderBy(column string, desc ...bool) QueryBuilder
	Build() (string, []any)
}

// InsertBuilder builds multi-row INSERT statements with positional parameters.
type InsertBuilder interface {
	Into(table string) InsertBuilder
	Columns(columns ...string) InsertBuilder
	Values(values ...any) InsertBuilder
	Build() (string, []any)
}

type queryBuilder struct {
	selectCols  []string
	fromTable   string
	whereCond   []string
	whereArgs   []any
	orderByCols []string
	argCounter  int
}

// NewQueryBuilder creates a new query builder.
func NewQueryBuilder() QueryBuilder {
	return &queryBuilder{}
}

func (qb *queryBuilder) Select(columns ...string) QueryBuilder {
	qb.selectCols = append(qb.selectCols, columns...)
	return qb
}

func (qb *queryBuilder) From(table string) QueryBuilder {
	qb.fromTable = table
	return qb
}

// Where adds a condition joined with AND. Each ? is bound to the next arg.
func (qb *queryBuilder) Where(condition string, args ...any) QueryBuilder {
	for range args {
		qb.argCounter++
		condition = strings.Replace(condition, "?", fmt.Sprintf("$%d", qb.argCounter), 1)
	}
	qb.whereCond = append(qb.whereCond, condition)
	qb.whereArgs = append(qb.whereArgs, args...)
	return qb
}

func (qb *queryBuilder) OrderBy(column string, desc ...bool) QueryBuilder {
	order := "ASC"
	if len(desc) > 0 && desc[0] {
		order = "DESC"
	}
	qb.orderByCols = append(qb.orderByCols, column+" "+order)
	return qb
}

func (qb *queryBuilder) Build() (string, []any) {
	var query strings.Builder

	query.WriteString("SELECT ")
	if len(qb.selectCols) == 0 {
		query.WriteString("*")
	} else {
		query.WriteString(strings.Join(qb.selectCols, ", "))
	}

	if qb.fromTable != "" {
		query.WriteString(" FROM ")
		query.WriteString(qb.fromTable)
	}

	if len(qb.whereCond) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(qb.whereCond, " AND "))
	}

	if len(qb.orderByCols) > 0 {
		query.WriteString(" ORDER BY ")
		query.WriteString(strings.Join(qb.orderByCols, ", "))
	}

	return query.String(), append([]any{}, qb.whereArgs...)
}

type insertBuilder struct {
	table   string
	columns []string
	values  [][]any
}

// NewInsertBuilder creates a new insert builder.
func NewInsertBuilder() InsertBuilder {
	return &insertBuilder{}
}

func (ib *insertBuilder) Into(table string) InsertBuilder {
	ib.table = table
	return ib
}

func (ib *insertBuilder) Columns(columns ...string) InsertBuilder {
	ib.columns = columns
	return ib
}

// Values appends one row.
func (ib *insertBuilder) Values(values ...any) InsertBuilder {
	ib.values = append(ib.values, values)
	return ib
}

func (ib *insertBuilder) Build() (string, []any) {
	var query strings.Builder
	args := make([]any, 0, len(ib.values)*len(ib.columns))

	query.WriteString("INSERT INTO ")
	query.WriteString(ib.table)

	if len(ib.columns) > 0 {
		query.WriteString(" (")
		query.WriteString(strings.Join(ib.columns, ", "))
		query.WriteString(")")
	}

	query.WriteString(" VALUES ")

	rows := make([]string, len(ib.values))
	for i, row := range ib.values {
		placeholders := make([]string, len(row))
		for j := range row {
			args = append(args, row[j])
			placeholders[j] = fmt.Sprintf("$%d", len(args))
		}
		rows[i] = "(" + strings.Join(placeholders, ", ") + ")"
	}
	query.WriteString(strings.Join(rows, ", "))

	return query.String(), args
}
