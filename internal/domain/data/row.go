package data

// Row represents a single table row
// row[i] holds the text value of schema column i
type Row []string

// Copy creates a copy of the row to prevent aliasing between tables
func (r Row) Copy() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Concat returns a new row holding the fields of r followed by the fields of other.
// Neither input is retained by the result.
func (r Row) Concat(other Row) Row {
	out := make(Row, 0, len(r)+len(other))
	out = append(out, r...)
	return append(out, other...)
}

// Equal reports whether both rows hold the same fields in the same order
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}
