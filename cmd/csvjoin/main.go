package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "0.1.0"
	buildDate = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "csvjoin",
		Short: "csvjoin - sort-merge joins over delimited files",
		Long: `csvjoin loads delimited files into memory and joins them on a shared column.

Join two files on a column:
  csvjoin join --left Customers.csv --right Orders.csv --key customer_guid --out Joined.csv

Print a file (or stdin):
  csvjoin cat Customers.csv`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(
		newJoinCmd(&cfgFile),
		newCatCmd(&cfgFile),
		newServeCmd(&cfgFile),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "csvjoin %s (built %s)\n", version, buildDate)
			},
		},
	)

	return rootCmd
}
