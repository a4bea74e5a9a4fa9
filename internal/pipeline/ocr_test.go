package pipeline

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parldata/bioharvest/internal/config"
	"github.com/parldata/bioharvest/internal/ocr"
)

// --- Fakes ---

// fakeEngine returns preset results in call order.
type fakeEngine struct {
	results []ocr.Result
	err     error
	calls   int
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Recognize(_ context.Context, _ image.Image) (ocr.Result, error) {
	if e.err != nil {
		return ocr.Result{}, e.err
	}
	if e.calls >= len(e.results) {
		return ocr.Result{}, nil
	}
	res := e.results[e.calls]
	e.calls++
	return res, nil
}

func (e *fakeEngine) Close() error { return nil }

// fakeSource serves pre-rendered pages and an optional text layer.
type fakeSource struct {
	pages     map[string][]image.Image
	textLayer map[string][]string
	renders   int
}

func (s *fakeSource) Pages(path string, _ float64) ([]image.Image, error) {
	pages, ok := s.pages[filepath.Base(path)]
	if !ok {
		return nil, errors.New("no such document")
	}
	s.renders++
	return pages, nil
}

func (s *fakeSource) TextLayer(path string) ([]string, error) {
	layer, ok := s.textLayer[filepath.Base(path)]
	if !ok {
		return nil, nil
	}
	return layer, nil
}

func grayPage() image.Image {
	return image.NewGray(image.Rect(0, 0, 4, 4))
}

func lines(confidence float64, texts ...string) ocr.Result {
	res := ocr.Result{}
	for _, text := range texts {
		res.Lines = append(res.Lines, ocr.Line{Text: text, Confidence: confidence})
	}
	return res
}

func ocrConfig(t *testing.T) config.OCR {
	t.Helper()
	cfg := config.DefaultOCR()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = t.TempDir()
	return cfg
}

func touchPDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write pdf stub: %v", err)
	}
	return path
}

// --- ProcessFile Tests ---

func TestProcessFile_OutputFormat(t *testing.T) {
	cfg := ocrConfig(t)
	path := touchPDF(t, cfg.InputDir, "1957_register.pdf")

	engine := &fakeEngine{results: []ocr.Result{
		lines(0.9, "JOHN SMITH", "Minister of Finance"),
		{},
		lines(0.9, "MARY JONES"),
	}}
	source := &fakeSource{pages: map[string][]image.Image{
		"1957_register.pdf": {grayPage(), grayPage(), grayPage()},
	}}

	p := NewOCRPipeline(cfg, engine, source)
	if err := p.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "1957_register.txt"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	got := string(data)

	for _, want := range []string{
		"OCR Results for: 1957_register.pdf\n",
		"Total pages: 3\n",
		"Pages with text: 2\n",
		"Empty pages: 1\n",
		strings.Repeat("=", 60) + "\n\n",
		"\n=== Page 1 ===\n",
		"\n=== Page 3 ===\n",
		"JOHN SMITH\nMinister of Finance",
		"MARY JONES",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// The empty page counts in the header but leaves no block; page 3
	// keeps its number.
	if strings.Contains(got, "=== Page 2 ===") {
		t.Errorf("empty page should produce no block:\n%s", got)
	}

	rule := strings.Repeat("=", 50)
	if !strings.Contains(got, "\n"+rule+"\n=== Page 1 ===\n"+rule+"\n\nJOHN SMITH") {
		t.Errorf("page block not delimited as expected:\n%s", got)
	}
}

func TestProcessFile_AllPagesEmptySkipsOutput(t *testing.T) {
	cfg := ocrConfig(t)
	path := touchPDF(t, cfg.InputDir, "blank.pdf")

	engine := &fakeEngine{}
	source := &fakeSource{pages: map[string][]image.Image{
		"blank.pdf": {grayPage(), grayPage()},
	}}

	p := NewOCRPipeline(cfg, engine, source)
	if err := p.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "blank.txt")); !os.IsNotExist(err) {
		t.Error("expected no output file for an all-empty document")
	}
}

func TestProcessFile_PreprocessRetry(t *testing.T) {
	cfg := ocrConfig(t)
	cfg.Preprocess = false
	path := touchPDF(t, cfg.InputDir, "faint.pdf")

	// First pass over the raw page finds nothing; the preprocessed retry
	// succeeds.
	engine := &fakeEngine{results: []ocr.Result{
		{},
		lines(0.9, "RECOVERED TEXT"),
	}}
	source := &fakeSource{pages: map[string][]image.Image{
		"faint.pdf": {grayPage()},
	}}

	p := NewOCRPipeline(cfg, engine, source)
	if err := p.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if engine.calls != 2 {
		t.Errorf("expected 2 recognition calls, got %d", engine.calls)
	}
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "faint.txt"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "RECOVERED TEXT") {
		t.Errorf("retry text missing from output:\n%s", data)
	}
}

func TestProcessFile_LowConfidenceFallback(t *testing.T) {
	cfg := ocrConfig(t)
	path := touchPDF(t, cfg.InputDir, "noisy.pdf")

	// Every line sits below the configured threshold but above the floor.
	engine := &fakeEngine{results: []ocr.Result{
		lines(0.15, "BARELY LEGIBLE"),
	}}
	source := &fakeSource{pages: map[string][]image.Image{
		"noisy.pdf": {grayPage()},
	}}

	p := NewOCRPipeline(cfg, engine, source)
	if err := p.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "noisy.txt"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "BARELY LEGIBLE") {
		t.Errorf("low-confidence text missing from output:\n%s", data)
	}
}

func TestProcessFile_TextLayerSkipsOCR(t *testing.T) {
	cfg := ocrConfig(t)
	cfg.TextLayer = true
	path := touchPDF(t, cfg.InputDir, "digital.pdf")

	engine := &fakeEngine{err: errors.New("engine should not run")}
	source := &fakeSource{
		textLayer: map[string][]string{
			"digital.pdf": {"EMBEDDED PAGE ONE", ""},
		},
	}

	p := NewOCRPipeline(cfg, engine, source)
	if err := p.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if source.renders != 0 {
		t.Error("expected no page rendering on the text-layer path")
	}
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "digital.txt"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "EMBEDDED PAGE ONE") {
		t.Errorf("embedded text missing from output:\n%s", got)
	}
	if !strings.Contains(got, "Pages with text: 1\n") || !strings.Contains(got, "Empty pages: 1\n") {
		t.Errorf("page counts wrong:\n%s", got)
	}
	if strings.Contains(got, "=== Page 2 ===") {
		t.Errorf("empty page should produce no block:\n%s", got)
	}
}

// --- Run Tests ---

func TestRun_ContinuesPastFailedFile(t *testing.T) {
	cfg := ocrConfig(t)
	touchPDF(t, cfg.InputDir, "bad.pdf")
	touchPDF(t, cfg.InputDir, "good.pdf")

	// bad.pdf has no entry in the fake source and fails to render;
	// good.pdf still goes through.
	engine := &fakeEngine{results: []ocr.Result{lines(0.9, "TEXT")}}
	source := &fakeSource{pages: map[string][]image.Image{
		"good.pdf": {grayPage()},
	}}

	p := NewOCRPipeline(cfg, engine, source)
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "good.txt")); err != nil {
		t.Errorf("good.pdf output missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "bad.txt")); !os.IsNotExist(err) {
		t.Error("bad.pdf should produce no output")
	}
}

func TestRun_EmptyInputDir(t *testing.T) {
	cfg := ocrConfig(t)
	p := NewOCRPipeline(cfg, &fakeEngine{}, &fakeSource{})
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
