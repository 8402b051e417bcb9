// =============================================================================
// Sales Data Generator - XML Writer
// =============================================================================
//
// This module serializes transaction records as an XML document.
//
// XML STRUCTURE:
//
//   <?xml version="1.0" encoding="UTF-8"?>
//   <ventas>                               <!-- Root element -->
//     <venta n="1">                        <!-- One element per record -->
//       <order_id>ORD-100001</order_id>    <!-- One child per header column -->
//       <order_date>2025-01-02</order_date>
//       ...
//       <payment_type>Efectivo</payment_type>
//     </venta>
//   </ventas>
//
// Child elements follow types.Header, in header order, with the same string
// values the CSV writer emits. Records are encoded as they arrive; the root
// element is closed by Close.
//
// =============================================================================

package xmlwriter

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ginjaninja78/sales-data-generator/internal/types"
	"github.com/ginjaninja78/sales-data-generator/pkg/utils"
)

// Element names.
const (
	RootElement   = "ventas"
	RecordElement = "venta"
)

// Indent is the indentation used per nesting level.
const Indent = "  "

// Writer streams records as <venta> elements.
type Writer struct {
	enc    *xml.Encoder
	closer io.Closer
	rows   int
}

// Create makes any missing parent directories, creates (or truncates) the
// file at path and opens the root element.
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

// NewWriter writes XML to out. The caller owns out; Close only flushes.
func NewWriter(out io.Writer) (*Writer, error) {
	return newWriter(out, nil)
}

func newWriter(out io.Writer, closer io.Closer) (*Writer, error) {
	if _, err := io.WriteString(out, xml.Header); err != nil {
		return nil, fmt.Errorf("failed to write XML declaration: %w", err)
	}

	enc := xml.NewEncoder(out)
	enc.Indent("", Indent)
	if err := enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: RootElement}}); err != nil {
		return nil, fmt.Errorf("failed to open root element: %w", err)
	}
	return &Writer{enc: enc, closer: closer}, nil
}

// Write appends one record as a <venta> element.
func (w *Writer) Write(rec types.Record) error {
	start := xml.StartElement{
		Name: xml.Name{Local: RecordElement},
		Attr: []xml.Attr{{Name: xml.Name{Local: "n"}, Value: strconv.Itoa(w.rows + 1)}},
	}
	if err := w.enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to write %s: %w", rec.OrderID(), err)
	}

	for i, value := range rec.Row() {
		field := xml.StartElement{Name: xml.Name{Local: types.Header[i]}}
		if err := w.enc.EncodeElement(value, field); err != nil {
			return fmt.Errorf("failed to write %s.%s: %w", rec.OrderID(), types.Header[i], err)
		}
	}

	if err := w.enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("failed to write %s: %w", rec.OrderID(), err)
	}
	w.rows++
	return nil
}

// Rows returns the number of <venta> elements written.
func (w *Writer) Rows() int {
	return w.rows
}

// Close ends the root element, flushes and closes the file if Writer owns it.
func (w *Writer) Close() error {
	flushErr := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: RootElement}})
	if flushErr == nil {
		flushErr = w.enc.Flush()
	}

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
