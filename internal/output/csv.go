package output

import (
	"encoding/csv"
	"io"

	"github.com/parldata/bioharvest/internal/extract"
)

// csvHeader is the fixed column layout of the register exports.
var csvHeader = []string{"First Name", "Last Name", "Political Career", "Private Career"}

// CSVWriter writes one row per record with a fixed header.
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write appends a single row, emitting the header first if needed.
func (w *CSVWriter) Write(rec extract.Record) error {
	if !w.wroteHeader {
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	return w.w.Write([]string{rec.FirstName, rec.LastName, rec.Political, rec.Private})
}

// Flush writes buffered rows. The header is emitted even for empty results
// so every names file yields a well-formed table.
func (w *CSVWriter) Flush() error {
	if !w.wroteHeader {
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	w.w.Flush()
	return w.w.Error()
}
