package data

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestRowConcat(t *testing.T) {
	left := Row{"2", "b"}
	right := Row{"2", "X"}

	joined := left.Concat(right)
	assert.DeepEqual(t, joined, Row{"2", "b", "2", "X"})

	joined[0] = "changed"
	joined[2] = "changed"
	assert.Equal(t, left[0], "2")
	assert.Equal(t, right[0], "2")
}

func TestRowCopy(t *testing.T) {
	row := Row{"1", "a"}
	dup := row.Copy()
	dup[1] = "b"

	assert.Equal(t, row[1], "a")
	assert.Assert(t, Row(nil).Copy() == nil)
}

func TestRowEqual(t *testing.T) {
	assert.Assert(t, Row{"1", "a"}.Equal(Row{"1", "a"}))
	assert.Assert(t, !Row{"1", "a"}.Equal(Row{"1", "b"}))
	assert.Assert(t, !Row{"1"}.Equal(Row{"1", "a"}))
}
