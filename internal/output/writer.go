// Package output handles result serialization.
package output

import (
	"fmt"
	"io"

	"github.com/parldata/bioharvest/internal/extract"
)

// Format represents output format types.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer serializes result rows in extraction order.
type Writer interface {
	// Write outputs a single row.
	Write(rec extract.Record) error

	// Flush ensures all data is written.
	Flush() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatCSV:
		return NewCSVWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Extension returns the file extension for a format, including the dot.
func Extension(format Format) string {
	switch format {
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatYAML:
		return ".yaml"
	default:
		return ".csv"
	}
}
