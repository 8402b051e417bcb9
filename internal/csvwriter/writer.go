// =============================================================================
// Sales Data Generator - CSV Writer
// =============================================================================
//
// This module serializes transaction records to the flat dataset file.
//
// OUTPUT FORMAT:
//   - UTF-8, comma-separated, "\n" line endings
//   - One fixed 15-column header row (types.Header)
//   - One row per record, in header order
//   - Fields containing commas or quotes are quoted by encoding/csv
//
// Rows are written as they arrive; the full dataset is never buffered.
// On error the file is left as-is; there is no atomic replace.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/sales-data-generator/internal/types"
	"github.com/ginjaninja78/sales-data-generator/pkg/utils"
)

// Writer streams records as CSV rows.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
	rows   int
}

// Create makes any missing parent directories, creates (or truncates) the
// file at path and writes the header row.
func Create(path string) (*Writer, error) {
	if err := utils.EnsureParentDir(path); err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w, err := newWriter(file, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

// NewWriter writes CSV to out. The caller owns out; Close only flushes.
func NewWriter(out io.Writer) (*Writer, error) {
	return newWriter(out, nil)
}

func newWriter(out io.Writer, closer io.Closer) (*Writer, error) {
	w := &Writer{csv: csv.NewWriter(out), closer: closer}
	if err := w.csv.Write(types.Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return w, nil
}

// Write appends one record as a row.
func (w *Writer) Write(rec types.Record) error {
	if err := w.csv.Write(rec.Row()); err != nil {
		return fmt.Errorf("failed to write %s: %w", rec.OrderID(), err)
	}
	w.rows++
	return nil
}

// Rows returns the number of data rows written, header excluded.
func (w *Writer) Rows() int {
	return w.rows
}

// Close flushes buffered rows and closes the file if Writer owns it.
func (w *Writer) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()

	if w.closer != nil {
		if err := w.closer.Close(); err != nil && flushErr == nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
	}
	if flushErr != nil {
		return fmt.Errorf("failed to flush output: %w", flushErr)
	}
	return nil
}
