package writer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/multierr"

	"github.com/leengari/csvjoin/internal/config"
	"github.com/leengari/csvjoin/internal/domain/schema"
)

// WriteTable serializes a table as delimited text: the schema as a header
// record, then one record per row. Quoting follows encoding/csv rules.
func WriteTable(w io.Writer, t *schema.Table, opts config.CSVConfig) error {
	if t == nil {
		return fmt.Errorf("cannot write table: nil")
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.DelimiterRune()
	cw.UseCRLF = opts.UseCRLF

	if err := cw.Write(t.Schema); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", t.Name, err)
	}

	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d for %s: %w", i, t.Name, err)
		}
	}

	// A csv writer buffers internally; errors surface on flush
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", t.Name, err)
	}
	return nil
}

// SaveTable writes a table to path via a temp file and atomic rename
func SaveTable(path string, t *schema.Table, opts config.CSVConfig) (err error) {
	if t == nil || path == "" {
		return fmt.Errorf("cannot save table: nil or missing path")
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file for table %s: %w", t.Name, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(f)
	writeErr := WriteTable(bw, t, opts)
	if writeErr == nil {
		writeErr = bw.Flush()
	}
	if err = multierr.Combine(writeErr, f.Close()); err != nil {
		return fmt.Errorf("failed to write temp file for table %s: %w", t.Name, err)
	}

	// Atomic replace
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp → %s for table %s: %w", path, t.Name, err)
	}

	slog.Info("table saved",
		slog.String("table", t.Name),
		slog.String("path", path),
		slog.Int("rows", t.Len()),
	)

	return nil
}
