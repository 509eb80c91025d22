package join

import (
	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/schema"
)

// Stats describes a completed inner join
type Stats struct {
	LeftRows      int  // rows in the left input
	RightRows     int  // rows in the right input
	MatchedGroups int  // distinct key values present on both sides
	OutputRows    int  // rows emitted
	Sorted        bool // false when an empty input short-circuited the join
}

// boundKey is a column index together with the table it was resolved against.
// Sorting and key reads go through it so an index is never applied to the
// other table's rows.
type boundKey struct {
	table *schema.Table
	index int
}

// value returns the key field of row i
func (k boundKey) value(i int) string {
	return k.table.Rows[i][k.index]
}

// row returns row i of the bound table
func (k boundKey) row(i int) data.Row {
	return k.table.Rows[i]
}

// len returns the number of rows in the bound table
func (k boundKey) len() int {
	return len(k.table.Rows)
}
