package join

import (
	"cmp"
	"fmt"
	"unsafe"

	"github.com/leengari/csvjoin/internal/domain/schema"
)

// validateTables checks that both inputs exist
func validateTables(left, right *schema.Table) error {
	if left == nil {
		return fmt.Errorf("left table is nil")
	}
	if right == nil {
		return fmt.Errorf("right table is nil")
	}
	return nil
}

// resolveKey resolves the join column against a single table
func resolveKey(t *schema.Table, column string) (boundKey, error) {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return boundKey{}, err
	}
	return boundKey{table: t, index: idx}, nil
}

// outputName names the joined table after its inputs
func outputName(left, right *schema.Table) string {
	if left.Name == "" && right.Name == "" {
		return "joined"
	}
	return fmt.Sprintf("%s_%s", left.Name, right.Name)
}

// lockTables takes exclusive access to both inputs and returns the matching unlock.
// Locks are taken in address order so concurrent joins of (a, b) and (b, a)
// cannot deadlock. A self-join locks the table once.
func lockTables(left, right *schema.Table) func() {
	if left == right {
		left.Lock()
		return left.Unlock
	}

	first, second := left, right
	if cmp.Compare(uintptr(unsafe.Pointer(left)), uintptr(unsafe.Pointer(right))) > 0 {
		first, second = right, left
	}

	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
