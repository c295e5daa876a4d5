package db

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"equipdash/models"
)

var (
	// ErrConnection marks a failure to acquire a database connection.
	ErrConnection = errors.New("database connection failed")
	// ErrQuery marks a failure while executing a query or reading its rows.
	ErrQuery = errors.New("database query failed")
)

// Table is a rectangular result set: columns named after the query's
// projection and rows of driver values, []byte already turned into string.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of column, or -1.
func (t Table) Index(column string) int {
	for i, c := range t.Columns {
		if strings.EqualFold(c, column) {
			return i
		}
	}
	return -1
}

// Value returns the cell at (row, column), nil when either is out of range.
func (t Table) Value(row int, column string) interface{} {
	i := t.Index(column)
	if i < 0 || row < 0 || row >= len(t.Rows) {
		return nil
	}
	return t.Rows[row][i]
}

// Result is the tagged outcome of a query. A failed query carries an empty
// Table and Err wrapping ErrConnection or ErrQuery, so "no rows" and
// "query failed" stay distinguishable while both render as empty.
type Result struct {
	Table Table
	Err   error
}

func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) Empty() bool {
	return r.Table.Len() == 0
}

// ScalarInt reads column of the first row as an integer, 0 when absent.
func (r Result) ScalarInt(column string) int64 {
	return AsInt64(r.Table.Value(0, column))
}

// AsInt64 converts a driver value to int64. NULL and unparseable values are 0.
func AsInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int64(f)
		}
	}
	return 0
}

// AsFloat converts a driver value to float64. ok is false for NULL and
// values that are not numbers (MySQL and PostgreSQL deliver AVG as text).
func AsFloat(v interface{}) (f float64, ok bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// AsDate converts a driver value to a calendar day. DATE columns arrive as
// time.Time from every driver; date expressions may arrive as text.
func AsDate(v interface{}) time.Time {
	switch d := v.(type) {
	case time.Time:
		return models.Day(d)
	case string:
		s := strings.TrimSpace(d)
		if len(s) >= len(models.DateLayout) {
			if t, err := time.Parse(models.DateLayout, s[:len(models.DateLayout)]); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// AsString renders a driver value as text, empty for NULL.
func AsString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case time.Time:
		return models.FormatDate(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
