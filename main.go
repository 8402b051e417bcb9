// =============================================================================
// Sales Data Generator - Main Entry Point
// =============================================================================
//
// USAGE:
//   salesgen generate       - Write the synthetic sales dataset
//   salesgen inspect <file> - Describe a generated CSV
//   salesgen version        - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : catalog, entity generation, sampling, writers
//   - pkg/       : shared file and run-summary utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/sales-data-generator/cmd"
)

func main() {
	cmd.Execute()
}
