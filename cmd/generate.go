// =============================================================================
// Sales Data Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the full pipeline and
// writes the dataset.
//
// COMMAND USAGE:
//   salesgen generate [flags]
//
// FLAGS:
//   --seed, -s     : Random seed (0 picks one and prints it)
//   --output, -o   : Output path; {seed}, {run_id} and {format} are expanded
//   --format, -f   : csv, xlsx or xml
//   --summary      : Also write a YAML run summary to this path
//
// Flags override the config file, which overrides the built-in defaults.
// With neither, the run uses the standard dataset sizes and rules.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-data-generator/internal/config"
	"github.com/ginjaninja78/sales-data-generator/internal/generator"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	seedFlag    uint64
	outputFlag  string
	formatFlag  string
	summaryFlag string
)

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic sales dataset",
	Long: `The generate command builds the product catalog and the store, customer
and seller populations, then draws every transaction and streams it to the
output file.

The same seed always produces the same entities and transactions. Order dates
are drawn from the two years up to today, so reruns on another day shift the
date column.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Uint64VarP(&seedFlag, "seed", "s", 0, "Random seed (0 picks one)")
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", config.DefaultOutputFile, "Output file path")
	generateCmd.Flags().StringVarP(&formatFlag, "format", "f", config.FormatCSV, "Output format: csv, xlsx or xml")
	generateCmd.Flags().StringVar(&summaryFlag, "summary", "", "Write a YAML run summary to this path")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runGenerate(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	applyGenerateFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger()
	result, err := generator.New(cfg, generator.Options{Logger: logger}).Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("generation failed (seed %d): %w", result.Seed, err)
	}

	printSummary(cmd.OutOrStdout(), result)
	return nil
}

// applyGenerateFlags copies explicitly set flags over cfg.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if flags.Changed("output") {
		cfg.OutputFile = outputFlag
	}
	if flags.Changed("format") {
		cfg.Format = formatFlag
	}
	if flags.Changed("summary") {
		cfg.SummaryFile = summaryFlag
	}
}

// printSummary writes the end-of-run report.
func printSummary(w io.Writer, r generator.Result) {
	fmt.Fprintf(w, "Dataset generado: %d ventas\n", r.Stats.Transactions)
	fmt.Fprintf(w, "%d productos en %d categorías\n", r.Stats.Products, r.Stats.Categories)
	fmt.Fprintf(w, "%d tiendas en %d ciudades\n", r.Stats.Stores, r.Stats.Cities)
	fmt.Fprintf(w, "%d clientes, %d vendedores\n", r.Stats.Customers, r.Stats.Sellers)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Output:       %s\n", r.OutputFile)
	if r.SummaryFile != "" {
		fmt.Fprintf(w, "Summary:      %s\n", r.SummaryFile)
	}
	fmt.Fprintf(w, "Seed:         %d\n", r.Seed)
	fmt.Fprintf(w, "Run ID:       %s\n", r.RunID)
	fmt.Fprintf(w, "Time elapsed: %s\n", r.Stats.ProcessingTime)
}
