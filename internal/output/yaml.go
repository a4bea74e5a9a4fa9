package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/parldata/bioharvest/internal/extract"
)

// YAMLWriter buffers rows and writes them as one YAML sequence.
type YAMLWriter struct {
	w    *bufio.Writer
	rows []extract.Record
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:    bufio.NewWriter(w),
		rows: make([]extract.Record, 0),
	}
}

// Write buffers a single row.
func (w *YAMLWriter) Write(rec extract.Record) error {
	w.rows = append(w.rows, rec)
	return nil
}

// Flush writes the buffered rows as a YAML sequence.
func (w *YAMLWriter) Flush() error {
	out, err := yaml.Marshal(w.rows)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	return w.w.Flush()
}
