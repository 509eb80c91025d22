package testutil

import (
	"testing"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/schema"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if a row has the expected number of columns
func AssertColumnCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertKeysMatch checks that every joined row carries the same value in both key positions
func AssertKeysMatch(t *testing.T, table *schema.Table, leftIndex, rightIndex int, context string) {
	t.Helper()
	for i, row := range table.Rows {
		if row[leftIndex] != row[rightIndex] {
			t.Errorf("%s: row %d joins %q with %q", context, i, row[leftIndex], row[rightIndex])
		}
	}
}

// CountKey returns how many rows hold value at index
func CountKey(rows []data.Row, index int, value string) int {
	n := 0
	for _, row := range rows {
		if row[index] == value {
			n++
		}
	}
	return n
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
