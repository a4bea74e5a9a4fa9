package ocr

import (
	"image"
	"image/color"
	"testing"
)

// --- Result Tests ---

func TestResultText_ConfidenceFilter(t *testing.T) {
	r := Result{Lines: []Line{
		{Text: "keep one", Confidence: 0.9},
		{Text: "drop me", Confidence: 0.2},
		{Text: "keep two", Confidence: 0.3},
	}}

	got := r.Text(0.3)
	want := "keep one\nkeep two"
	if got != want {
		t.Errorf("Text(0.3) = %q, want %q", got, want)
	}
}

func TestResultText_LowerThresholdKeepsMore(t *testing.T) {
	r := Result{Lines: []Line{
		{Text: "faint line", Confidence: 0.15},
	}}

	if got := r.Text(0.3); got != "" {
		t.Errorf("expected empty at 0.3, got %q", got)
	}
	if got := r.Text(0.1); got != "faint line" {
		t.Errorf("expected line kept at 0.1, got %q", got)
	}
}

func TestResultText_BlankLinesSkipped(t *testing.T) {
	r := Result{Lines: []Line{
		{Text: "  ", Confidence: 0.9},
		{Text: "real", Confidence: 0.9},
	}}

	if got := r.Text(0.3); got != "real" {
		t.Errorf("expected blank lines skipped, got %q", got)
	}
}

func TestResultText_Empty(t *testing.T) {
	if got := (Result{}).Text(0.3); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

// --- Preprocess Tests ---

func TestPreprocess_PreservesDimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 30))
	got := Preprocess(src)

	b := got.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("expected 40x30, got %dx%d", b.Dx(), b.Dy())
	}
	if _, ok := got.(*image.Gray); !ok {
		t.Errorf("expected grayscale output, got %T", got)
	}
}

func TestToGray_DownscalesWidePages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, maxPageWidth*2, 1000))
	got := toGray(src)

	if got.Bounds().Dx() != maxPageWidth {
		t.Errorf("expected width capped at %d, got %d", maxPageWidth, got.Bounds().Dx())
	}
	if got.Bounds().Dy() != 500 {
		t.Errorf("expected aspect ratio preserved (500), got %d", got.Bounds().Dy())
	}
}

func TestMedian9(t *testing.T) {
	if got := median9([9]uint8{9, 1, 8, 2, 7, 3, 6, 4, 5}); got != 5 {
		t.Errorf("median9 = %d, want 5", got)
	}
	if got := median9([9]uint8{0, 0, 0, 0, 0, 0, 0, 0, 255}); got != 0 {
		t.Errorf("median9 = %d, want 0 (single outlier removed)", got)
	}
}

func TestEqualize_StretchesContrast(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(0, 0, color.Gray{Y: 100})
	src.SetGray(1, 0, color.Gray{Y: 110})

	got := equalize(src)
	lo := got.GrayAt(0, 0).Y
	hi := got.GrayAt(1, 0).Y
	if lo >= hi {
		t.Errorf("equalization should preserve ordering: %d >= %d", lo, hi)
	}
	if hi != 255 {
		t.Errorf("highest value should map to full range, got %d", hi)
	}
}
