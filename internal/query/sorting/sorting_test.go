package sorting

import (
	stderrors "errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/errors"
	"github.com/leengari/csvjoin/internal/domain/schema"
)

func newTable() *schema.Table {
	return &schema.Table{
		Name:   "cities",
		Schema: schema.Schema{"id", "city"},
		Rows: []data.Row{
			{"3", "Zagreb"},
			{"10", "Austin"},
			{"1", "lima"},
			{"2", "Lima"},
		},
	}
}

func TestByColumn(t *testing.T) {
	table := newTable()

	assert.NilError(t, ByColumn(table, 0))
	assert.DeepEqual(t, table.Rows, []data.Row{
		{"1", "lima"},
		{"10", "Austin"},
		{"2", "Lima"},
		{"3", "Zagreb"},
	})

	// byte order puts upper case before lower case
	assert.NilError(t, ByColumn(table, 1))
	assert.DeepEqual(t, table.Rows, []data.Row{
		{"10", "Austin"},
		{"2", "Lima"},
		{"3", "Zagreb"},
		{"1", "lima"},
	})
}

func TestByColumn_Idempotent(t *testing.T) {
	table := newTable()
	assert.NilError(t, ByColumn(table, 1))
	once := table.Clone()

	assert.NilError(t, ByColumn(table, 1))
	assert.DeepEqual(t, table.Rows, once.Rows)

	sorted, err := IsSortedByColumn(table, 1)
	assert.NilError(t, err)
	assert.Assert(t, sorted)
}

func TestByColumn_EmptyTable(t *testing.T) {
	table := &schema.Table{Schema: schema.Schema{"id"}}
	assert.NilError(t, ByColumn(table, 0))
	assert.Equal(t, len(table.Rows), 0)
}

func TestByColumn_IndexOutOfBounds(t *testing.T) {
	for _, index := range []int{2, 7, -1} {
		table := newTable()
		before := table.Clone()

		err := ByColumn(table, index)

		var oob *errors.IndexOutOfBoundsError
		assert.Assert(t, stderrors.As(err, &oob), "index %d: got %v", index, err)
		assert.Equal(t, oob.Index, index)
		assert.Equal(t, oob.Width, 2)
		assert.Equal(t, oob.Table, "cities")
		assert.DeepEqual(t, table.Rows, before.Rows)
	}
}

func TestIsSortedByColumn(t *testing.T) {
	table := newTable()

	sorted, err := IsSortedByColumn(table, 0)
	assert.NilError(t, err)
	assert.Assert(t, !sorted)

	_, err = IsSortedByColumn(table, 5)
	assert.ErrorContains(t, err, "out of bounds")
}
