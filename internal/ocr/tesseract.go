package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements Engine using the gosseract client. A single client is
// created up front and reused for every page.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract constructs a Tesseract-backed OCR engine with the given
// language hints (e.g. "eng").
func NewTesseract(languages ...string) (*Tesseract, error) {
	client := gosseract.NewClient()
	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}
	return &Tesseract{client: client}, nil
}

// Name returns the engine identifier.
func (t *Tesseract) Name() string { return "tesseract" }

// Recognize performs OCR on a single page image and returns line-level text
// with confidences scaled to [0,1].
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Result{}, fmt.Errorf("encode page image: %w", err)
	}
	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return Result{}, fmt.Errorf("recognize lines: %w", err)
	}

	lines := make([]Line, 0, len(boxes))
	for _, b := range boxes {
		lines = append(lines, Line{
			Text:       b.Word,
			Confidence: b.Confidence / 100.0,
		})
	}
	return Result{Lines: lines}, nil
}

// Close releases the underlying client.
func (t *Tesseract) Close() error {
	return t.client.Close()
}
