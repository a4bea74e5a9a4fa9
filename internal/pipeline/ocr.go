// Package pipeline wires the page sources, recognition engine, extraction
// rules, and result writers into the two batch runs the CLI exposes.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/parldata/bioharvest/internal/config"
	"github.com/parldata/bioharvest/internal/logger"
	"github.com/parldata/bioharvest/internal/ocr"
)

// lowConfidence is the floor used for the last recognition retry on pages
// the configured threshold left empty.
const lowConfidence = 0.1

// PageSource yields page content for a PDF file.
type PageSource interface {
	// Pages renders every page to an image at the given DPI.
	Pages(path string, dpi float64) ([]image.Image, error)

	// TextLayer returns the embedded text per page, or nil when the
	// document carries no usable text layer.
	TextLayer(path string) ([]string, error)
}

// OCRPipeline converts a directory of scanned PDFs into text files.
type OCRPipeline struct {
	cfg    config.OCR
	engine ocr.Engine
	source PageSource
}

// NewOCRPipeline builds the PDF-to-text pipeline.
func NewOCRPipeline(cfg config.OCR, engine ocr.Engine, source PageSource) *OCRPipeline {
	return &OCRPipeline{cfg: cfg, engine: engine, source: source}
}

// Run processes every *.pdf file in the input directory in sorted order.
// A file that fails is logged and skipped; the remaining files still run.
func (p *OCRPipeline) Run(ctx context.Context) error {
	pdfs, err := filepath.Glob(filepath.Join(p.cfg.InputDir, "*.pdf"))
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	sort.Strings(pdfs)
	if len(pdfs) == 0 {
		logger.Warn("no PDF files found", "dir", p.cfg.InputDir)
		return nil
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	processed := 0
	for _, path := range pdfs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.ProcessFile(ctx, path); err != nil {
			logger.Error("failed to process PDF", "file", filepath.Base(path), "error", err)
			continue
		}
		processed++
	}

	logger.Info("OCR run complete", "processed", processed, "total", len(pdfs))
	return nil
}

// ProcessFile converts a single PDF into a text file in the output
// directory. Nothing is written when every page comes back empty.
func (p *OCRPipeline) ProcessFile(ctx context.Context, path string) error {
	name := filepath.Base(path)
	logger.Info("processing PDF", "file", name)

	var pages []string
	if p.cfg.TextLayer {
		layer, err := p.source.TextLayer(path)
		if err != nil {
			logger.Debug("text layer probe failed, falling back to OCR", "file", name, "error", err)
		} else if layer != nil {
			logger.Info("using embedded text layer", "file", name)
			pages = layer
		}
	}

	if pages == nil {
		images, err := p.source.Pages(path, p.cfg.DPI)
		if err != nil {
			return fmt.Errorf("render pages: %w", err)
		}
		pages = make([]string, len(images))
		for i, img := range images {
			text, err := p.recognizePage(ctx, img)
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}
			pages[i] = text
			if text == "" {
				logger.Warn("page produced no text", "file", name, "page", i+1)
			}
		}
	}

	withText := 0
	for _, text := range pages {
		if text != "" {
			withText++
		}
	}
	if withText == 0 {
		logger.Warn("no text recognized, skipping output", "file", name)
		return nil
	}

	outPath := filepath.Join(p.cfg.OutputDir, strings.TrimSuffix(name, ".pdf")+".txt")
	if err := os.WriteFile(outPath, []byte(renderDocument(name, pages, withText)), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("wrote text file", "file", filepath.Base(outPath), "pages", len(pages), "with_text", withText)
	return nil
}

// recognizePage runs the engine over one page image. A page that yields no
// text at the configured confidence is retried with preprocessing (when the
// first pass ran without it) and finally re-read at a low confidence floor.
func (p *OCRPipeline) recognizePage(ctx context.Context, img image.Image) (string, error) {
	if p.cfg.Preprocess {
		img = ocr.Preprocess(img)
	}
	res, err := p.engine.Recognize(ctx, img)
	if err != nil {
		return "", err
	}
	text := res.Text(p.cfg.Confidence)
	if text != "" {
		return text, nil
	}

	if !p.cfg.Preprocess {
		img = ocr.Preprocess(img)
		res, err = p.engine.Recognize(ctx, img)
		if err != nil {
			return "", err
		}
		if text = res.Text(p.cfg.Confidence); text != "" {
			return text, nil
		}
	}

	return res.Text(lowConfidence), nil
}

// renderDocument assembles the output text file: a summary header followed
// by one delimited block per page that produced text. Empty pages count in
// the header but leave no block; the remaining blocks keep their page
// numbers.
func renderDocument(name string, pages []string, withText int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("OCR Results for: %s\n", name))
	b.WriteString(fmt.Sprintf("Total pages: %d\n", len(pages)))
	b.WriteString(fmt.Sprintf("Pages with text: %d\n", withText))
	b.WriteString(fmt.Sprintf("Empty pages: %d\n", len(pages)-withText))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	blocks := make([]string, 0, withText)
	for i, text := range pages {
		if text == "" {
			continue
		}
		blocks = append(blocks, renderPage(i+1, text))
	}
	b.WriteString(strings.Join(blocks, "\n"))

	return b.String()
}

func renderPage(number int, text string) string {
	rule := strings.Repeat("=", 50)
	return fmt.Sprintf("\n%s\n=== Page %d ===\n%s\n\n%s\n", rule, number, rule, text)
}
