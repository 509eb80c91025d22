package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/leengari/csvjoin/internal/domain/schema"
)

// printTable renders a table as aligned columns with a header separator
func printTable(w io.Writer, t *schema.Table) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(t.Schema, "\t"))

	sep := make([]string, len(t.Schema))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "(%d rows)\n", len(t.Rows))
}
