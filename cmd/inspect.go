// =============================================================================
// Sales Data Generator - Inspect Command
// =============================================================================
//
// COMMAND USAGE:
//   salesgen inspect <file.csv|file.xlsx>
//
// Streams a generated dataset back and prints what it contains: row count,
// distinct entities, the order date range, the share of local sales and
// the payment mix.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-data-generator/internal/csvparser"
	"github.com/ginjaninja78/sales-data-generator/internal/xlsxparser"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Describe a generated dataset (CSV or XLSX)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		newLogger().Debug("inspecting dataset", "path", args[0])

		stats, err := inspectFile(args[0])
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), args[0], stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// inspectFile picks the reader by file extension.
func inspectFile(path string) (csvparser.Stats, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsxparser.InspectFile(path)
	}
	return csvparser.InspectFile(path)
}

func printStats(w io.Writer, path string, s csvparser.Stats) {
	fmt.Fprintf(w, "=== %s ===\n", path)
	fmt.Fprintf(w, "Rows:         %d\n", s.Rows)
	fmt.Fprintf(w, "Order dates:  %s .. %s\n", s.FirstOrderDate, s.LastOrderDate)
	fmt.Fprintf(w, "Customers:    %d\n", s.Customers)
	fmt.Fprintf(w, "Sellers:      %d\n", s.Sellers)
	fmt.Fprintf(w, "Products:     %d in %d categories\n", s.Products, s.Categories)
	fmt.Fprintf(w, "Stores:       %d in %d cities\n", s.Stores, s.Cities)
	fmt.Fprintf(w, "Local sales:  %d (%.1f%%)\n", s.LocalSales, s.LocalShare()*100)
	fmt.Fprintln(w, "Payments:")
	for _, p := range s.PaymentMix() {
		fmt.Fprintf(w, "  %-16s %6d (%.1f%%)\n", p.Label, p.Count, p.Share*100)
	}
}
