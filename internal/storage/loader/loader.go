package loader

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/csvjoin/internal/config"
	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/schema"
)

// ErrNoHeader is returned when the input holds no header record
var ErrNoHeader = stderrors.New("csv input has no header record")

// newReader configures a csv.Reader from the csv settings.
// FieldsPerRecord is left at 0 so every record must match the header width.
func newReader(r io.Reader, opts config.CSVConfig) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = opts.DelimiterRune()
	reader.Comment = opts.CommentRune()
	reader.TrimLeadingSpace = opts.TrimLeadingSpace
	reader.LazyQuotes = opts.LazyQuotes
	return reader
}

// ReadTable parses delimited text into a table.
// The first record becomes the schema and every following record a row;
// fields stay text, no type coercion happens.
func ReadTable(name string, r io.Reader, opts config.CSVConfig) (*schema.Table, error) {
	reader := newReader(r, opts)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("table %s: %w", name, ErrNoHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	table := &schema.Table{
		Name:   name,
		Schema: schema.Schema(header),
		Rows:   []data.Row{},
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read records of %s: %w", name, err)
		}
		table.Rows = append(table.Rows, data.Row(record))
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// LoadTable reads a delimited file from disk.
// The table is named after the file, without its extension.
func LoadTable(path string, opts config.CSVConfig) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadTable(TableName(path), f, opts)
	if err != nil {
		return nil, err
	}

	slog.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.Int("columns", table.Width()),
		slog.Int("rows", table.Len()),
	)

	return table, nil
}

// TableName derives a table name from a file path
func TableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
