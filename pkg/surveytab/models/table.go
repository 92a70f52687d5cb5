// Package models defines data structures for survey tabulation.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// NoAnswer is the label substituted for missing values in SA columns.
// The substitution is the single missing-value policy shared by all
// aggregation modes.
const NoAnswer = "no answer"

// ErrColumnNotFound indicates a referenced column does not exist in the table.
var ErrColumnNotFound = errors.New("column not found")

// Table is one uploaded survey dataset: a header row plus data records
// aligned by row index. Cells are kept as strings; an empty string is a
// missing value. A Table is read-only after loading.
type Table struct {
	// Source is the workbook file name (no path).
	Source string `json:"source"`
	// Sheet is the worksheet the table was read from.
	Sheet string `json:"sheet"`
	// Headers are the column names in worksheet order.
	Headers []string `json:"headers"`
	// Records holds the data rows. Every record has len(Headers) cells.
	Records [][]string `json:"records"`
}

// RowCount returns the number of data records (respondents).
func (t *Table) RowCount() int {
	return len(t.Records)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}

// ColumnIndex returns the index of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the values of the named column in record order.
// It returns ErrColumnNotFound for an unknown name.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return t.ColumnAt(idx), nil
}

// ColumnAt returns the values of the column at index idx in record order.
func (t *Table) ColumnAt(idx int) []string {
	values := make([]string, len(t.Records))
	for i, rec := range t.Records {
		values[i] = rec[idx]
	}
	return values
}

// IsMissing reports whether a cell value counts as missing.
func IsMissing(v string) bool {
	return strings.TrimSpace(v) == ""
}

// FillMissing applies the missing-value policy: missing cells become the
// NoAnswer label, everything else passes through unchanged.
func FillMissing(v string) string {
	if IsMissing(v) {
		return NoAnswer
	}
	return v
}
