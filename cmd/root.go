// =============================================================================
// Sales Data Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (salesgen)
//   ├── generateCmd (salesgen generate)
//   ├── inspectCmd  (salesgen inspect <file>)
//   └── versionCmd  (salesgen version)
//
// The root command owns the global flags (--config, --verbose) and the
// logger shared by the subcommands. Logs go to stderr so that stdout carries
// only the human-readable summaries.
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-data-generator/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to an optional YAML configuration file.
var cfgFile string

// verbose enables debug logging.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "salesgen",
	Short: "Sales Data Generator - synthetic retail sales datasets",
	Long: `salesgen writes a synthetic home-improvement retail sales dataset: one
flat file with one row per transaction, built from a fixed product catalog
and randomly generated stores, customers and sellers.

Sales follow two correlation rules: customers mostly buy in a store of their
own city, and a minority of sales carry a discount.

Example Usage:
  salesgen generate                          # 20000 rows to data/raw_sales_data.csv
  salesgen generate --seed 42                # reproducible run
  salesgen generate --format xlsx -o out.xlsx
  salesgen inspect data/raw_sales_data.csv   # describe a generated file`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (built-in defaults if empty)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// newLogger returns the stderr logger for the current verbosity.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads --config, or the defaults when it is unset.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
