// Package pdfdoc provides page access to PDF files: raster rendering for
// the OCR path and an embedded text-layer probe for born-digital documents.
package pdfdoc

import (
	"fmt"
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// Renderer rasterizes PDF pages with MuPDF.
type Renderer struct{}

// NewRenderer creates a page renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Pages renders every page of the PDF at path to an image at the given DPI,
// in page order.
func (r *Renderer) Pages(path string, dpi float64) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	images := make([]image.Image, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// TextLayer returns the embedded text of each page, or nil when the document
// has no usable text layer. Pages whose text cannot be read come back empty
// rather than failing the document.
func (r *Renderer) TextLayer(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	hasText := false
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			hasText = true
		}
		pages = append(pages, text)
	}

	if !hasText {
		return nil, nil
	}
	return pages, nil
}
