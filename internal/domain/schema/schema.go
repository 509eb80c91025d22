package schema

import (
	"github.com/leengari/csvjoin/internal/domain/errors"
)

// Schema is the ordered list of column names of a table.
// Names are not required to be unique; lookups resolve to the first match.
type Schema []string

// IndexOf returns the zero-based position of the first column equal to name.
// The comparison is exact and case-sensitive.
func (s Schema) IndexOf(name string) (int, error) {
	for i, col := range s {
		if col == name {
			return i, nil
		}
	}
	return -1, &errors.MissingColumnError{Column: name}
}

// Concat returns a new schema with the columns of s followed by the columns of other.
// Duplicate names are kept.
func (s Schema) Concat(other Schema) Schema {
	out := make(Schema, 0, len(s)+len(other))
	out = append(out, s...)
	return append(out, other...)
}

// Copy returns an independent copy of the schema
func (s Schema) Copy() Schema {
	if s == nil {
		return nil
	}
	out := make(Schema, len(s))
	copy(out, s)
	return out
}
