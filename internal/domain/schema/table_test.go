package schema

import (
	stderrors "errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/errors"
)

func TestSchemaIndexOf(t *testing.T) {
	s := Schema{"id", "name", "id", "Name"}

	tests := []struct {
		column string
		want   int
	}{
		{"id", 0},
		{"name", 1},
		{"Name", 3},
	}
	for _, tt := range tests {
		got, err := s.IndexOf(tt.column)
		assert.NilError(t, err)
		assert.Equal(t, got, tt.want, tt.column)
	}

	_, err := s.IndexOf("NAME")
	var missing *errors.MissingColumnError
	assert.Assert(t, stderrors.As(err, &missing))
	assert.Equal(t, missing.Column, "NAME")

	_, err = Schema{}.IndexOf("id")
	assert.ErrorContains(t, err, "column 'id' does not exist")
}

func TestSchemaConcat(t *testing.T) {
	left := Schema{"id", "name"}
	right := Schema{"id", "city"}

	out := left.Concat(right)
	assert.DeepEqual(t, out, Schema{"id", "name", "id", "city"})

	out[0] = "changed"
	assert.Equal(t, left[0], "id")
}

func TestTableColumnIndex(t *testing.T) {
	table := NewTable("customers", Schema{"customer_guid", "email"}, nil)

	idx, err := table.ColumnIndex("email")
	assert.NilError(t, err)
	assert.Equal(t, idx, 1)

	_, err = table.ColumnIndex("address")
	assert.Error(t, err, "column 'address' does not exist in table 'customers'")
}

func TestNewTableCopies(t *testing.T) {
	columns := Schema{"id"}
	rows := []data.Row{{"1"}}

	table := NewTable("t", columns, rows)
	columns[0] = "changed"
	rows[0][0] = "changed"

	assert.Equal(t, table.Schema[0], "id")
	assert.Equal(t, table.Rows[0][0], "1")
}

func TestTableValidate(t *testing.T) {
	table := NewTable("t", Schema{"a", "b"}, []data.Row{{"1", "2"}, {"3"}})

	err := table.Validate()
	var width *errors.RowWidthError
	assert.Assert(t, stderrors.As(err, &width))
	assert.Equal(t, width.RowIndex, 1)
	assert.Equal(t, width.Expected, 2)
	assert.Equal(t, width.Actual, 1)

	table.Rows = table.Rows[:1]
	assert.NilError(t, table.Validate())
}
