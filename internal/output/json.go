package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/parldata/bioharvest/internal/extract"
)

// JSONWriter buffers rows and writes them as one indented JSON array.
type JSONWriter struct {
	w    *bufio.Writer
	rows []extract.Record
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:    bufio.NewWriter(w),
		rows: make([]extract.Record, 0),
	}
}

// Write buffers a single row.
func (w *JSONWriter) Write(rec extract.Record) error {
	w.rows = append(w.rows, rec)
	return nil
}

// Flush writes the buffered rows as a JSON array.
func (w *JSONWriter) Flush() error {
	out, err := json.MarshalIndent(w.rows, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

// JSONLWriter writes newline-delimited JSON (JSONL).
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// Write writes a single row as a JSON line.
func (w *JSONLWriter) Write(rec extract.Record) error {
	out, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	_, err = w.w.WriteString("\n")
	return err
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}
