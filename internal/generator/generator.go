// =============================================================================
// Sales Data Generator - Generator Module
// =============================================================================
//
// This module orchestrates one generation run, from the seeded random source
// to the last row on disk.
//
// GENERATION PIPELINE:
//   1. Resolve the seed (0 means "pick one") and derive the run ID
//   2. Build products, stores, customers and sellers, in that order
//   3. Open the output writer (CSV, XLSX or XML)
//   4. Draw transactions one by one and stream them to the writer
//   5. Close the writer and optionally write the YAML run summary
//
// Every step consumes the same *rand.Rand, so the order above is part of the
// output contract: a fixed seed and a fixed clock reproduce the file byte for
// byte.
//
// CONCURRENCY:
//   A run is single goroutine. The context is only checked between records.
//
// =============================================================================

package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/ginjaninja78/sales-data-generator/internal/catalog"
	"github.com/ginjaninja78/sales-data-generator/internal/config"
	"github.com/ginjaninja78/sales-data-generator/internal/csvwriter"
	"github.com/ginjaninja78/sales-data-generator/internal/entities"
	"github.com/ginjaninja78/sales-data-generator/internal/persona"
	"github.com/ginjaninja78/sales-data-generator/internal/sampler"
	"github.com/ginjaninja78/sales-data-generator/internal/types"
	"github.com/ginjaninja78/sales-data-generator/internal/xlsxwriter"
	"github.com/ginjaninja78/sales-data-generator/internal/xmlwriter"
	"github.com/ginjaninja78/sales-data-generator/pkg/utils"
)

// progressEvery is how often (in records) a debug progress line is logged.
const progressEvery = 5000

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one run.
type Result struct {
	// RunID is derived from the seed and the entity counts.
	RunID string

	// Seed is the seed actually used, never 0.
	Seed uint64

	// OutputFile is the dataset path after placeholder expansion.
	OutputFile string

	// SummaryFile is the summary path after expansion, empty if none was written.
	SummaryFile string

	Format string

	// Today is the clock the order date window was anchored on.
	Today time.Time

	Stats Stats
}

// Stats contains counts for the console summary.
type Stats struct {
	Transactions int
	Products     int

	// Categories and Cities are the catalog sizes the entities were drawn from.
	Categories int
	Cities     int

	Stores    int
	Customers int
	Sellers   int

	ProcessingTime time.Duration
}

// Summary converts the result to its on-disk summary form.
func (r Result) Summary() utils.RunSummary {
	return utils.RunSummary{
		RunID:        r.RunID,
		Seed:         r.Seed,
		OutputFile:   r.OutputFile,
		Format:       r.Format,
		Transactions: r.Stats.Transactions,
		Products:     r.Stats.Products,
		Categories:   r.Stats.Categories,
		Stores:       r.Stats.Stores,
		Cities:       r.Stats.Cities,
		Customers:    r.Stats.Customers,
		Sellers:      r.Stats.Sellers,
		Today:        r.Today.Format(types.DateLayout),
		Elapsed:      r.Stats.ProcessingTime.Round(time.Millisecond).String(),
	}
}

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Logger is the logging surface the generator needs. *slog.Logger satisfies
// it; args are slog key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// RecordWriter is a sink for generated records.
type RecordWriter interface {
	Write(rec types.Record) error
	Rows() int
	Close() error
}

// Options carries the collaborators of a run. Zero values are replaced with
// production defaults.
type Options struct {
	// Now anchors the order date window. Zero means time.Now().
	Now time.Time

	// People supplies names and emails. Nil means a gofakeit provider seeded
	// from the run seed.
	People persona.Provider

	// Logger receives progress. Nil discards.
	Logger Logger
}

// Generator runs the pipeline for one configuration.
type Generator struct {
	cfg    *config.Config
	opts   Options
	logger Logger
}

// New creates a Generator. cfg must already be validated.
func New(cfg *config.Config, opts Options) *Generator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{cfg: cfg, opts: opts, logger: logger}
}

// ResolveSeed returns seed, or a random non-zero seed when seed is 0.
func ResolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline and returns what it produced. On error the output
// file may hold a partial dataset.
func (g *Generator) Run(ctx context.Context) (result Result, err error) {
	startTime := time.Now()
	counts := g.cfg.Counts

	// =========================================================================
	// STEP 1: SEED, CLOCK, RUN ID
	// =========================================================================

	seed := ResolveSeed(g.cfg.Seed)
	today := g.opts.Now
	if today.IsZero() {
		today = time.Now()
	}
	runID := utils.RunID(seed, counts.Stores, counts.Products, counts.Customers, counts.Sellers, counts.Transactions).String()

	result = Result{
		RunID:  runID,
		Seed:   seed,
		Format: g.cfg.Format,
		Today:  today,
	}
	params := map[string]string{
		"seed":   strconv.FormatUint(seed, 10),
		"run_id": runID,
		"format": g.cfg.Format,
	}
	result.OutputFile = utils.ExpandOutputPath(g.cfg.OutputFile, params)

	g.logger.Info("starting run", "run_id", runID, "seed", seed, "output", result.OutputFile)

	rng := rand.New(rand.NewPCG(seed, seed))
	people := g.opts.People
	if people == nil {
		people = persona.NewFaker(seed)
	}

	// =========================================================================
	// STEP 2: ENTITIES
	// =========================================================================

	pop, err := g.buildPopulation(rng, people)
	if err != nil {
		return result, err
	}

	result.Stats.Products = len(pop.Products)
	result.Stats.Categories = len(catalog.Categories())
	result.Stats.Stores = len(pop.Stores)
	result.Stats.Cities = len(catalog.Cities())
	result.Stats.Customers = len(pop.Customers)
	result.Stats.Sellers = len(pop.Sellers)

	s, err := sampler.New(rng, pop, sampler.Rules{
		LocalityProbability: g.cfg.Rules.Locality(),
		DiscountProbability: g.cfg.Rules.Discount(),
	}, today)
	if err != nil {
		return result, fmt.Errorf("failed to create sampler: %w", err)
	}

	// =========================================================================
	// STEP 3: OUTPUT
	// =========================================================================

	w, err := openWriter(g.cfg.Format, result.OutputFile)
	if err != nil {
		return result, err
	}
	closed := false
	defer func() {
		if !closed {
			if cerr := w.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		result.Stats.Transactions = w.Rows()
	}()

	// =========================================================================
	// STEP 4: TRANSACTIONS
	// =========================================================================

	for i := 0; i < counts.Transactions; i++ {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("generation interrupted after %d records: %w", i, err)
		}

		rec := s.Next()
		if err := w.Write(rec); err != nil {
			return result, err
		}

		if (i+1)%progressEvery == 0 {
			g.logger.Debug("progress", "records", i+1, "of", counts.Transactions)
		}
	}

	// =========================================================================
	// STEP 5: CLOSE AND SUMMARIZE
	// =========================================================================

	closed = true
	if err := w.Close(); err != nil {
		return result, err
	}

	result.Stats.Transactions = w.Rows()
	result.Stats.ProcessingTime = time.Since(startTime)

	if g.cfg.SummaryFile != "" {
		summaryPath := utils.ExpandOutputPath(g.cfg.SummaryFile, params)
		if err := utils.WriteSummary(result.Summary(), summaryPath); err != nil {
			return result, err
		}
		result.SummaryFile = summaryPath
		g.logger.Debug("wrote summary", "path", summaryPath)
	}

	g.logger.Info("run complete",
		"transactions", result.Stats.Transactions,
		"elapsed", result.Stats.ProcessingTime.Round(time.Millisecond))

	return result, nil
}

// buildPopulation generates every entity collection in the fixed order.
func (g *Generator) buildPopulation(rng *rand.Rand, people persona.Provider) (sampler.Population, error) {
	counts := g.cfg.Counts
	gen := entities.New(rng, people)

	products := gen.Products(counts.Products)
	g.logger.Debug("generated products", "count", len(products))

	stores := gen.Stores(counts.Stores)
	g.logger.Debug("generated stores", "count", len(stores))

	customers, err := gen.Customers(counts.Customers)
	if err != nil {
		return sampler.Population{}, fmt.Errorf("failed to generate customers: %w", err)
	}
	g.logger.Debug("generated customers", "count", len(customers))

	sellers, err := gen.Sellers(counts.Sellers, stores)
	if err != nil {
		return sampler.Population{}, fmt.Errorf("failed to generate sellers: %w", err)
	}
	g.logger.Debug("generated sellers", "count", len(sellers))

	return sampler.Population{
		Products:  products,
		Stores:    stores,
		Customers: customers,
		Sellers:   sellers,
	}, nil
}

// openWriter creates the sink for format at path.
func openWriter(format, path string) (RecordWriter, error) {
	switch format {
	case config.FormatCSV:
		w, err := csvwriter.Create(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.FormatXLSX:
		w, err := xlsxwriter.Create(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.FormatXML:
		w, err := xmlwriter.Create(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
