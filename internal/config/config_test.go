package config

import (
	"strings"
	"testing"
)

// --- OCR Config Tests ---

func TestOCRValidate_Defaults(t *testing.T) {
	if err := DefaultOCR().Validate(); err != nil {
		t.Fatalf("default OCR config should validate, got %v", err)
	}
}

func TestOCRValidate_MissingDirs(t *testing.T) {
	cfg := DefaultOCR()
	cfg.InputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing input dir")
	}

	cfg = DefaultOCR()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing output dir")
	}
}

func TestOCRValidate_ConfidenceRange(t *testing.T) {
	cfg := DefaultOCR()
	cfg.Confidence = 1.2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for confidence > 1")
	}

	cfg.Confidence = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative confidence")
	}

	cfg.Confidence = 0.1
	if err := cfg.Validate(); err != nil {
		t.Errorf("confidence 0.1 should validate, got %v", err)
	}
}

func TestOCRValidate_DPI(t *testing.T) {
	cfg := DefaultOCR()
	cfg.DPI = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero dpi")
	}
}

// --- Extract Config Tests ---

func TestExtractValidate_Defaults(t *testing.T) {
	if err := DefaultExtract().Validate(); err != nil {
		t.Fatalf("default extract config should validate, got %v", err)
	}
}

func TestExtractValidate_Format(t *testing.T) {
	for _, format := range []string{"csv", "json", "jsonl", "yaml"} {
		cfg := DefaultExtract()
		cfg.Format = format
		if err := cfg.Validate(); err != nil {
			t.Errorf("format %q should validate, got %v", format, err)
		}
	}

	cfg := DefaultExtract()
	cfg.Format = "xml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "Format") {
		t.Errorf("expected Format in error, got %v", err)
	}
}
