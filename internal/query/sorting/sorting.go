package sorting

import (
	"slices"
	"strings"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/errors"
	"github.com/leengari/csvjoin/internal/domain/schema"
)

// ByColumn reorders the table's rows ascending by the text value at index.
// Values compare byte-wise, so "10" sorts before "9". Rows with equal keys may
// end up in any order relative to each other.
//
// The rows are reordered in place. Callers sharing the table must hold its lock.
func ByColumn(t *schema.Table, index int) error {
	if err := checkIndex(t, index); err != nil {
		return err
	}

	slices.SortFunc(t.Rows, func(a, b data.Row) int {
		return strings.Compare(a[index], b[index])
	})
	return nil
}

// IsSortedByColumn reports whether the rows are already ascending by index
func IsSortedByColumn(t *schema.Table, index int) (bool, error) {
	if err := checkIndex(t, index); err != nil {
		return false, err
	}

	return slices.IsSortedFunc(t.Rows, func(a, b data.Row) int {
		return strings.Compare(a[index], b[index])
	}), nil
}

func checkIndex(t *schema.Table, index int) error {
	if index < 0 || index >= len(t.Schema) {
		return &errors.IndexOutOfBoundsError{
			Table: t.Name,
			Index: index,
			Width: len(t.Schema),
		}
	}
	return nil
}
