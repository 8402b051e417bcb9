// =============================================================================
// Sales Data Generator - XLSX Writer
// =============================================================================
//
// This module writes the same record stream as the CSV writer into an Excel
// workbook, for analysts who start from a spreadsheet.
//
// WORKBOOK LAYOUT:
//   Sheet "ventas"
//   | Row 1 | types.Header (15 columns)                        |
//   | Row 2 | first record                                      |
//   | ...   |                                                   |
//
//   unit_price is written as a number and quantity as an integer so that
//   spreadsheet formulas work without conversion. Everything else is text.
//
// Rows go through excelize's StreamWriter, so memory stays flat no matter
// how many transactions are generated. The file itself is only written on
// Close.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-data-generator/internal/types"
	"github.com/ginjaninja78/sales-data-generator/pkg/utils"
)

// SheetName is the worksheet holding the sales rows.
const SheetName = "ventas"

// Writer streams records into a single-sheet workbook.
type Writer struct {
	path   string
	file   *excelize.File
	stream *excelize.StreamWriter

	// nextRow is the 1-based worksheet row the next record goes to.
	nextRow int
}

// Create prepares a workbook that will be saved to path on Close.
func Create(path string) (*Writer, error) {
	if err := utils.EnsureParentDir(path); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open stream writer: %w", err)
	}

	w := &Writer{path: path, file: f, stream: sw, nextRow: 1}

	header := make([]interface{}, len(types.Header))
	for i, h := range types.Header {
		header[i] = h
	}
	if err := w.setRow(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return w, nil
}

// Write appends one record as a worksheet row.
func (w *Writer) Write(rec types.Record) error {
	row := rec.Row()
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	cells[10] = rec.UnitPrice.InexactFloat64()
	cells[11] = rec.Quantity

	if err := w.setRow(cells); err != nil {
		return fmt.Errorf("failed to write %s: %w", rec.OrderID(), err)
	}
	return nil
}

// Rows returns the number of data rows written, header excluded.
func (w *Writer) Rows() int {
	return w.nextRow - 2
}

// Close flushes the stream and saves the workbook.
func (w *Writer) Close() error {
	defer w.file.Close()

	if err := w.stream.Flush(); err != nil {
		return fmt.Errorf("failed to flush worksheet: %w", err)
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *Writer) setRow(cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		return err
	}
	if err := w.stream.SetRow(cell, cells); err != nil {
		return err
	}
	w.nextRow++
	return nil
}
