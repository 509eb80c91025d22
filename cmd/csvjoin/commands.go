package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leengari/csvjoin/internal/config"
	"github.com/leengari/csvjoin/internal/engine"
	"github.com/leengari/csvjoin/internal/infrastructure/logging"
	"github.com/leengari/csvjoin/internal/network"
	"github.com/leengari/csvjoin/internal/storage/loader"
	"github.com/leengari/csvjoin/internal/storage/writer"
)

// setup loads configuration, installs the default logger and returns the
// cleanup to run before exit.
func setup(cfgFile string, delimiter string) (*config.Config, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	if delimiter != "" {
		cfg.CSV.Delimiter = delimiter
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger, closeFn, err := logging.SetupLogger(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}
	slog.SetDefault(logger)

	return cfg, closeFn, nil
}

func newJoinCmd(cfgFile *string) *cobra.Command {
	var leftPath, rightPath, key, outPath, delimiter string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Inner join two delimited files on a shared column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeFn, err := setup(*cfgFile, delimiter)
			if err != nil {
				return err
			}
			defer closeFn()

			left, err := loader.LoadTable(leftPath, cfg.CSV)
			if err != nil {
				return err
			}
			right, err := loader.LoadTable(rightPath, cfg.CSV)
			if err != nil {
				return err
			}

			eng := engine.New()
			eng.AddObserver(engine.NewLoggingObserver(slog.Default()))

			result, err := eng.InnerJoin(left, right, key)
			if err != nil {
				return err
			}

			if outPath == "" {
				return writer.WriteTable(cmd.OutOrStdout(), result, cfg.CSV)
			}

			if err := writer.SaveTable(outPath, result, cfg.CSV); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Inner Join Complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&leftPath, "left", "l", "", "left input file")
	cmd.Flags().StringVarP(&rightPath, "right", "r", "", "right input file")
	cmd.Flags().StringVarP(&key, "key", "k", "", "join column, present in both files")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (stdout when empty)")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "field delimiter (overrides config)")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newCatCmd(cfgFile *string) *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:   "cat [file]",
		Short: "Print the header and records of a delimited file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeFn, err := setup(*cfgFile, delimiter)
			if err != nil {
				return err
			}
			defer closeFn()

			if len(args) == 0 || args[0] == "-" {
				table, err := loader.ReadTable("stdin", cmd.InOrStdin(), cfg.CSV)
				if err != nil {
					return err
				}
				printTable(cmd.OutOrStdout(), table)
				return nil
			}

			table, err := loader.LoadTable(args[0], cfg.CSV)
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "field delimiter (overrides config)")
	return cmd
}

func newServeCmd(cfgFile *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve joins over TCP (line-delimited JSON)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeFn, err := setup(*cfgFile, "")
			if err != nil {
				return err
			}
			defer closeFn()

			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			eng := engine.New()
			eng.AddObserver(engine.NewLoggingObserver(slog.Default()))

			slog.Info("Starting join server", "pid", os.Getpid())
			return network.Start(cfg.Server.Port, eng)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}
