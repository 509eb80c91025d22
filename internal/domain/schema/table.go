package schema

import (
	"sync"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/errors"
)

// Table represents an in-memory dataset: a schema plus its rows.
// A table owns its schema and rows; nothing returned by this package aliases
// another table's storage.
type Table struct {
	mu     sync.Mutex
	Name   string     `json:"name,omitempty"`
	Schema Schema     `json:"columns"`
	Rows   []data.Row `json:"rows"`
}

// NewTable creates a table from a schema and rows, copying both
func NewTable(name string, columns Schema, rows []data.Row) *Table {
	t := &Table{
		Name:   name,
		Schema: columns.Copy(),
		Rows:   make([]data.Row, len(rows)),
	}
	for i, row := range rows {
		t.Rows[i] = row.Copy()
	}
	return t
}

// Lock acquires exclusive access to the table.
// Operations that reorder rows (sorting, joins) must hold it.
func (t *Table) Lock() {
	t.mu.Lock()
}

// Unlock releases exclusive access
func (t *Table) Unlock() {
	t.mu.Unlock()
}

// ColumnIndex resolves a column name to its position in this table's schema
func (t *Table) ColumnIndex(name string) (int, error) {
	idx, err := t.Schema.IndexOf(name)
	if err != nil {
		return -1, &errors.MissingColumnError{Table: t.Name, Column: name}
	}
	return idx, nil
}

// Width returns the number of columns in the schema
func (t *Table) Width() int {
	return len(t.Schema)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no rows
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Append adds a copy of row to the table
func (t *Table) Append(row data.Row) {
	t.Rows = append(t.Rows, row.Copy())
}

// Validate checks that every row has exactly one field per schema column.
// The join assumes this holds; loaders call Validate before handing a table out.
func (t *Table) Validate() error {
	width := len(t.Schema)
	for i, row := range t.Rows {
		if len(row) != width {
			return &errors.RowWidthError{
				Table:    t.Name,
				RowIndex: i,
				Expected: width,
				Actual:   len(row),
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the table, useful when callers need to keep
// the original row order across a join.
func (t *Table) Clone() *Table {
	return NewTable(t.Name, t.Schema, t.Rows)
}
