// =============================================================================
// Sales Data Generator - CSV Parser Module
// =============================================================================
//
// This module reads a generated sales dataset back from disk. It is used by
// the inspect command to report what a run actually produced, and by tests
// that check the file end to end.
//
// FEATURES:
//   - Streaming reads: one row in memory at a time
//   - Header check against the fixed 15-column layout (types.Header)
//   - RowSource, shared with the XLSX reader so Inspect handles both formats
//   - Rows exposed by column name
//   - Dataset statistics: distinct entities, local-sale share, payment mix
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/ginjaninja78/sales-data-generator/internal/types"
)

// ErrHeaderMismatch is returned when a file's header is not the dataset header.
var ErrHeaderMismatch = errors.New("header does not match the sales dataset layout")

// =============================================================================
// STREAMING PARSER
// =============================================================================

// StreamingParser reads dataset rows one at a time.
//
// USAGE:
//
//	parser, err := Open(path)
//	if err != nil {
//	    return err
//	}
//	defer parser.Close()
//
//	for parser.Next() {
//	    row := parser.Row()
//	    // ...
//	}
//	if err := parser.Err(); err != nil {
//	    return err
//	}
type StreamingParser struct {
	closer     io.Closer
	reader     *csv.Reader
	headers    []string
	currentRow map[string]string
	rowNumber  int
	err        error
}

// Open opens a dataset file and validates its header.
func Open(path string) (*StreamingParser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	p, err := newParser(bufio.NewReader(file), file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return p, nil
}

// NewStreamingParser reads a dataset from r. Close is a no-op.
func NewStreamingParser(r io.Reader) (*StreamingParser, error) {
	return newParser(r, nil)
}

func newParser(r io.Reader, closer io.Closer) (*StreamingParser, error) {
	reader := csv.NewReader(r)
	// The header row fixes the width; readHeaders then requires it to be
	// types.Header, so every data row must have 15 fields.
	reader.FieldsPerRecord = 0
	reader.ReuseRecord = true

	p := &StreamingParser{closer: closer, reader: reader}
	if err := p.readHeaders(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *StreamingParser) readHeaders() error {
	row, err := p.reader.Read()
	if err == io.EOF {
		return fmt.Errorf("unexpected end of file while reading headers")
	}
	if err != nil {
		return fmt.Errorf("error reading header row: %w", err)
	}
	p.rowNumber++

	headers := make([]string, len(row))
	for i, h := range row {
		headers[i] = strings.TrimSpace(h)
	}
	if !slices.Equal(headers, types.Header) {
		return fmt.Errorf("%w: got %v", ErrHeaderMismatch, headers)
	}

	p.headers = headers
	return nil
}

// Next advances to the next row. Returns false at end of file or on error.
func (p *StreamingParser) Next() bool {
	if p.err != nil {
		return false
	}

	row, err := p.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		p.err = fmt.Errorf("error reading row %d: %w", p.rowNumber+1, err)
		return false
	}
	p.rowNumber++

	p.currentRow = make(map[string]string, len(p.headers))
	for i, header := range p.headers {
		p.currentRow[header] = row[i]
	}
	return true
}

// Row returns the current row keyed by column name.
func (p *StreamingParser) Row() map[string]string {
	return p.currentRow
}

// Headers returns the parsed header.
func (p *StreamingParser) Headers() []string {
	return p.headers
}

// RowNumber returns the current line number (1-indexed, header is line 1).
func (p *StreamingParser) RowNumber() int {
	return p.rowNumber
}

// Err returns the first error hit by Next.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close closes the underlying file, if any.
func (p *StreamingParser) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// =============================================================================
// DATASET STATISTICS
// =============================================================================

// Stats describes the content of a dataset file.
type Stats struct {
	Rows int

	Customers  int
	Sellers    int
	Products   int
	Categories int
	Stores     int
	Cities     int

	// LocalSales counts rows where customer_city equals store_city.
	LocalSales int

	// Payments maps payment_type to its row count.
	Payments map[string]int

	FirstOrderDate string
	LastOrderDate  string
}

// LocalShare returns LocalSales / Rows, or 0 for an empty dataset.
func (s Stats) LocalShare() float64 {
	if s.Rows == 0 {
		return 0
	}
	return float64(s.LocalSales) / float64(s.Rows)
}

// PaymentShare is one line of the payment mix.
type PaymentShare struct {
	Label string
	Count int
	Share float64
}

// PaymentMix returns the payment counts sorted by count, highest first.
func (s Stats) PaymentMix() []PaymentShare {
	mix := make([]PaymentShare, 0, len(s.Payments))
	for label, n := range s.Payments {
		share := 0.0
		if s.Rows > 0 {
			share = float64(n) / float64(s.Rows)
		}
		mix = append(mix, PaymentShare{Label: label, Count: n, Share: share})
	}
	sort.Slice(mix, func(i, j int) bool {
		if mix[i].Count != mix[j].Count {
			return mix[i].Count > mix[j].Count
		}
		return mix[i].Label < mix[j].Label
	})
	return mix
}

// RowSource yields dataset rows keyed by column name. StreamingParser and
// the XLSX reader both implement it.
type RowSource interface {
	Next() bool
	Row() map[string]string
	Err() error
}

// Inspect drains src and aggregates Stats.
func Inspect(src RowSource) (Stats, error) {
	stats := Stats{Payments: make(map[string]int)}

	customers := make(map[string]struct{})
	sellers := make(map[string]struct{})
	products := make(map[string]struct{})
	categories := make(map[string]struct{})
	stores := make(map[string]struct{})
	cities := make(map[string]struct{})

	for src.Next() {
		row := src.Row()
		stats.Rows++

		customers[row["customer_email"]] = struct{}{}
		// Work emails may repeat between sellers.
		sellers[row["seller_name"]+"\x00"+row["seller_email"]] = struct{}{}
		products[row["product_id"]] = struct{}{}
		categories[row["category"]] = struct{}{}
		// Same-named stores in one city are indistinguishable in the file.
		stores[row["store_name"]+"\x00"+row["store_city"]] = struct{}{}
		cities[row["store_city"]] = struct{}{}

		if row["customer_city"] == row["store_city"] {
			stats.LocalSales++
		}
		stats.Payments[row["payment_type"]]++

		date := row["order_date"]
		if stats.FirstOrderDate == "" || date < stats.FirstOrderDate {
			stats.FirstOrderDate = date
		}
		if date > stats.LastOrderDate {
			stats.LastOrderDate = date
		}
	}
	if err := src.Err(); err != nil {
		return stats, err
	}

	stats.Customers = len(customers)
	stats.Sellers = len(sellers)
	stats.Products = len(products)
	stats.Categories = len(categories)
	stats.Stores = len(stores)
	stats.Cities = len(cities)
	return stats, nil
}

// InspectFile opens path and returns its Stats.
func InspectFile(path string) (Stats, error) {
	p, err := Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer p.Close()

	stats, err := Inspect(p)
	if err != nil {
		return stats, fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	return stats, nil
}
