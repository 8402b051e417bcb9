// =============================================================================
// Sales Data Generator - File Manager Utility
// =============================================================================
//
// This module provides file utilities for the generator, including:
//   - Output directory creation
//   - Output path placeholder expansion ({seed}, {run_id}, {format})
//   - Run identifiers
//   - The optional YAML run summary
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will hold path, if missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a regular file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// =============================================================================
// FILE NAMING
// =============================================================================

// ExpandOutputPath replaces {key} placeholders in format with params[key].
// Unknown placeholders are left untouched.
//
// Example:
//
//	ExpandOutputPath("data/sales_{seed}.csv", map[string]string{"seed": "42"})
//	// "data/sales_42.csv"
func ExpandOutputPath(format string, params map[string]string) string {
	out := format
	for key, value := range params {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

// runNamespace scopes run IDs to this tool.
var runNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ginjaninja78/sales-data-generator/run"))

// RunID derives a stable identifier for a run from its seed and entity
// counts. Same inputs, same ID.
func RunID(seed uint64, counts ...int) uuid.UUID {
	parts := []string{strconv.FormatUint(seed, 10)}
	for _, c := range counts {
		parts = append(parts, strconv.Itoa(c))
	}
	return uuid.NewSHA1(runNamespace, []byte(strings.Join(parts, ":")))
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary describes one completed generation run.
type RunSummary struct {
	RunID        string `yaml:"run_id"`
	Seed         uint64 `yaml:"seed"`
	OutputFile   string `yaml:"output_file"`
	Format       string `yaml:"format"`
	Transactions int    `yaml:"transactions"`
	Products     int    `yaml:"products"`
	Categories   int    `yaml:"categories"`
	Stores       int    `yaml:"stores"`
	Cities       int    `yaml:"cities"`
	Customers    int    `yaml:"customers"`
	Sellers      int    `yaml:"sellers"`
	Today        string `yaml:"today"`
	Elapsed      string `yaml:"elapsed"`
}

// WriteSummary writes summary as YAML to path, creating parent directories.
func WriteSummary(summary RunSummary, path string) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// ReadSummary loads a summary written by WriteSummary.
func ReadSummary(path string) (RunSummary, error) {
	var summary RunSummary
	data, err := os.ReadFile(path)
	if err != nil {
		return summary, fmt.Errorf("failed to read summary: %w", err)
	}
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return summary, fmt.Errorf("failed to parse summary: %w", err)
	}
	return summary, nil
}
