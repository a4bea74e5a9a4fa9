// Package ocr wraps text-line recognition of page images.
package ocr

import (
	"context"
	"image"
	"strings"
)

// Line is one recognized text line.
type Line struct {
	Text string
	// Confidence is the recognition confidence in [0,1].
	Confidence float64
}

// Result captures recognition output for a single page image.
type Result struct {
	Lines []Line
}

// Text joins the lines whose confidence clears minConfidence, one line per
// row, matching the recognizer's reading order.
func (r Result) Text(minConfidence float64) string {
	var sb strings.Builder
	for _, line := range r.Lines {
		if line.Confidence < minConfidence {
			continue
		}
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// Engine is the OCR provider contract: one page image in, recognized lines
// with confidences out. Implementations are constructed once and reused
// read-only across pages.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, img image.Image) (Result, error)
	Close() error
}
