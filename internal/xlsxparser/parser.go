// =============================================================================
// Sales Data Generator - XLSX Reader
// =============================================================================
//
// This module reads a workbook written by the XLSX writer back into rows
// keyed by column name, so the inspect command can describe either output
// format.
//
// WORKBOOK STRUCTURE (Expected):
//   | Sheet "ventas" | Row 1: types.Header, Rows 2..N: one sale each |
//
//   Numeric cells (unit_price, quantity) come back as their displayed text,
//   which for the General format matches the CSV rendering.
//
// Rows are pulled through excelize's row iterator, one at a time.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-data-generator/internal/csvparser"
	"github.com/ginjaninja78/sales-data-generator/internal/types"
	"github.com/ginjaninja78/sales-data-generator/internal/xlsxwriter"
)

// Reader iterates the data rows of a sales workbook.
type Reader struct {
	file       *excelize.File
	rows       *excelize.Rows
	headers    []string
	currentRow map[string]string
	rowNumber  int
	err        error
}

// Open opens the workbook at path and validates the header row of the
// sales sheet.
func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	rows, err := f.Rows(xlsxwriter.SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", xlsxwriter.SheetName, err)
	}

	r := &Reader{file: f, rows: rows}
	if err := r.readHeaders(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Reader) readHeaders() error {
	if !r.rows.Next() {
		if err := r.rows.Error(); err != nil {
			return fmt.Errorf("error reading header row: %w", err)
		}
		return fmt.Errorf("sheet %q is empty", xlsxwriter.SheetName)
	}
	r.rowNumber++

	cols, err := r.rows.Columns()
	if err != nil {
		return fmt.Errorf("error reading header row: %w", err)
	}
	headers := make([]string, len(cols))
	for i, h := range cols {
		headers[i] = strings.TrimSpace(h)
	}
	if !slices.Equal(headers, types.Header) {
		return fmt.Errorf("%w: got %v", csvparser.ErrHeaderMismatch, headers)
	}

	r.headers = headers
	return nil
}

// Next advances to the next non-empty row.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}

	for r.rows.Next() {
		r.rowNumber++

		cols, err := r.rows.Columns()
		if err != nil {
			r.err = fmt.Errorf("error reading row %d: %w", r.rowNumber, err)
			return false
		}
		if isRowEmpty(cols) {
			continue
		}
		if len(cols) > len(r.headers) {
			r.err = fmt.Errorf("row %d has %d cells, want %d", r.rowNumber, len(cols), len(r.headers))
			return false
		}

		// Trailing empty cells are not returned by the iterator.
		r.currentRow = make(map[string]string, len(r.headers))
		for i, header := range r.headers {
			if i < len(cols) {
				r.currentRow[header] = cols[i]
			} else {
				r.currentRow[header] = ""
			}
		}
		return true
	}

	if err := r.rows.Error(); err != nil {
		r.err = fmt.Errorf("error reading rows: %w", err)
	}
	return false
}

// Row returns the current row keyed by column name.
func (r *Reader) Row() map[string]string {
	return r.currentRow
}

// RowNumber returns the current worksheet row (1-indexed, header is row 1).
func (r *Reader) RowNumber() int {
	return r.rowNumber
}

// Err returns the first error hit by Next.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the row iterator and the workbook.
func (r *Reader) Close() error {
	rowsErr := r.rows.Close()
	if err := r.file.Close(); err != nil {
		return err
	}
	return rowsErr
}

// InspectFile opens the workbook at path and returns its Stats.
func InspectFile(path string) (csvparser.Stats, error) {
	r, err := Open(path)
	if err != nil {
		return csvparser.Stats{}, err
	}
	defer r.Close()

	stats, err := csvparser.Inspect(r)
	if err != nil {
		return stats, fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	return stats, nil
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
