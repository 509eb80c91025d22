package errors

import (
	"fmt"
	"strings"
)

// MissingColumnError is returned when a column name is not part of a table schema
type MissingColumnError struct {
	Table  string // table name (may be empty for anonymous tables)
	Column string // requested column name
}

func (e *MissingColumnError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("column '%s' does not exist", e.Column)
	}
	return fmt.Sprintf("column '%s' does not exist in table '%s'", e.Column, e.Table)
}

// IndexOutOfBoundsError is returned when a column index falls outside a table schema.
// The join always resolves indices against the table it sorts, so seeing this
// from a join means an index was paired with the wrong schema.
type IndexOutOfBoundsError struct {
	Table string // table name (may be empty)
	Index int    // offending column index
	Width int    // number of columns in the schema
}

func (e *IndexOutOfBoundsError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("index '%d' out of bounds", e.Index))

	if e.Table != "" {
		parts = append(parts, fmt.Sprintf("table '%s'", e.Table))
	}

	parts = append(parts, fmt.Sprintf("schema has %d columns", e.Width))

	return strings.Join(parts, " - ")
}

// RowWidthError reports a row whose field count differs from its schema
type RowWidthError struct {
	Table    string
	RowIndex int // 0-based row position
	Expected int
	Actual   int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("row %d in table '%s' has %d fields, expected %d",
		e.RowIndex, e.Table, e.Actual, e.Expected)
}
