// =============================================================================
// Sales Data Generator - Configuration Module
// =============================================================================
//
// This module holds every tunable of a generation run. The defaults are the
// fixed constants the dataset is defined by; a run with no config file and no
// flags uses exactly these values.
//
// CONFIGURATION SOURCES (later wins):
//   1. Default()             - built-in constants
//   2. YAML file (--config)  - optional, partial files are fine
//   3. Command-line flags    - applied by the cmd package
//
// EXAMPLE FILE:
//   seed: 42
//   output_file: data/raw_sales_data.csv
//   format: csv
//   counts:
//     stores: 10
//     products: 20
//     customers: 50
//     sellers: 10
//     transactions: 200
//   rules:
//     locality_probability: 0.8
//     discount_probability: 0.15
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatXML  = "xml"
)

// DefaultOutputFile is where the dataset is written unless overridden.
const DefaultOutputFile = "data/raw_sales_data.csv"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the settings of one generation run.
type Config struct {
	// Seed drives every random draw. Zero means "pick one at startup".
	Seed uint64 `yaml:"seed"`

	// OutputFile is the dataset path. Supports {seed}, {run_id} and {format}.
	OutputFile string `yaml:"output_file"`

	// Format is "csv", "xlsx" or "xml".
	Format string `yaml:"format"`

	// SummaryFile, when set, receives a YAML run summary.
	SummaryFile string `yaml:"summary_file"`

	Counts Counts `yaml:"counts"`
	Rules  Rules  `yaml:"rules"`
}

// Counts sets the size of each entity collection.
type Counts struct {
	Stores       int `yaml:"stores"`
	Products     int `yaml:"products"`
	Customers    int `yaml:"customers"`
	Sellers      int `yaml:"sellers"`
	Transactions int `yaml:"transactions"`
}

// Rules sets the correlation rule probabilities.
//
// Pointers distinguish "absent" from an explicit 0, which is a legitimate
// value (e.g. disabling discounts).
type Rules struct {
	LocalityProbability *float64 `yaml:"locality_probability"`
	DiscountProbability *float64 `yaml:"discount_probability"`
}

// Locality returns the locality probability, or its default if unset.
func (r Rules) Locality() float64 {
	if r.LocalityProbability == nil {
		return defaultLocality
	}
	return *r.LocalityProbability
}

// Discount returns the discount probability, or its default if unset.
func (r Rules) Discount() float64 {
	if r.DiscountProbability == nil {
		return defaultDiscount
	}
	return *r.DiscountProbability
}

const (
	defaultLocality = 0.8
	defaultDiscount = 0.15
)

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in run configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills every unset field with its built-in value.
func applyDefaults(cfg *Config) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.Format == "" {
		cfg.Format = FormatCSV
	}
	if cfg.Counts.Stores == 0 {
		cfg.Counts.Stores = 30
	}
	if cfg.Counts.Products == 0 {
		cfg.Counts.Products = 100
	}
	if cfg.Counts.Customers == 0 {
		cfg.Counts.Customers = 1200
	}
	if cfg.Counts.Sellers == 0 {
		cfg.Counts.Sellers = 150
	}
	if cfg.Counts.Transactions == 0 {
		cfg.Counts.Transactions = 20000
	}
}

// =============================================================================
// LOADING AND VALIDATION
// =============================================================================

// Load reads a YAML config file. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks counts, probabilities and format.
func (c *Config) Validate() error {
	counts := []struct {
		name  string
		value int
	}{
		{"stores", c.Counts.Stores},
		{"products", c.Counts.Products},
		{"customers", c.Counts.Customers},
		{"sellers", c.Counts.Sellers},
		{"transactions", c.Counts.Transactions},
	}
	for _, n := range counts {
		if n.value < 1 {
			return fmt.Errorf("counts.%s must be at least 1, got %d", n.name, n.value)
		}
	}

	if p := c.Rules.Locality(); p < 0 || p > 1 {
		return fmt.Errorf("rules.locality_probability must be within [0, 1], got %v", p)
	}
	if p := c.Rules.Discount(); p < 0 || p > 1 {
		return fmt.Errorf("rules.discount_probability must be within [0, 1], got %v", p)
	}

	switch c.Format {
	case FormatCSV, FormatXLSX, FormatXML:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, FormatCSV, FormatXLSX, FormatXML)
	}

	return nil
}
