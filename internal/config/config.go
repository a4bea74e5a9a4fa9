// Package config defines the pipeline configuration structures.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// OCR configures the PDF-to-text pipeline.
type OCR struct {
	// InputDir is scanned (non-recursively) for *.pdf files.
	InputDir string `mapstructure:"input_dir" validate:"required"`

	// OutputDir receives one .txt file per successfully processed PDF.
	OutputDir string `mapstructure:"output_dir" validate:"required"`

	// DPI is the rendering resolution for page images.
	DPI float64 `mapstructure:"dpi" validate:"gt=0"`

	// Confidence is the minimum per-line recognition confidence in [0,1].
	// Lines below it are discarded.
	Confidence float64 `mapstructure:"confidence" validate:"gte=0,lte=1"`

	// Preprocess enables the image cleanup filters before recognition.
	Preprocess bool `mapstructure:"preprocess"`

	// TextLayer probes each PDF for embedded text and skips OCR for
	// born-digital documents.
	TextLayer bool `mapstructure:"text_layer"`

	// Languages holds the recognition language hints (default: eng).
	Languages []string `mapstructure:"languages"`
}

// Validate checks the OCR configuration.
func (c OCR) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("ocr config: %w", err)
	}
	return nil
}

// Extract configures the names/bio extraction pipeline.
type Extract struct {
	// InputDir holds paired {year}_{base}_Names.txt / {year}_{base}_Bio.txt files.
	InputDir string `mapstructure:"input_dir" validate:"required"`

	// OutputDir receives one result file per names file.
	OutputDir string `mapstructure:"output_dir" validate:"required"`

	// Format selects the result encoding.
	Format string `mapstructure:"format" validate:"oneof=csv json jsonl yaml"`

	// Cleanup enables the LLM cleanup call for non-empty excerpts.
	Cleanup bool `mapstructure:"cleanup"`

	// Provider names the text-generation backend used for cleanup.
	Provider string `mapstructure:"provider"`

	// Model overrides the provider's default model.
	Model string `mapstructure:"model"`

	// APIKeyFile is the path the provider key is read from. A missing or
	// empty file degrades cleanup calls to error results instead of
	// failing the run.
	APIKeyFile string `mapstructure:"api_key_file"`

	// PromptTemplate is the path of the fixed cleanup prompt. Missing
	// template aborts the pipeline before any file is processed.
	PromptTemplate string `mapstructure:"prompt_template"`
}

// Validate checks the extract configuration.
func (c Extract) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("extract config: %w", err)
	}
	return nil
}

// DefaultOCR returns the OCR pipeline defaults.
func DefaultOCR() OCR {
	return OCR{
		InputDir:   "pdf_data",
		OutputDir:  "txt_data",
		DPI:        144,
		Confidence: 0.3,
		Preprocess: true,
		Languages:  []string{"eng"},
	}
}

// DefaultExtract returns the extraction pipeline defaults.
func DefaultExtract() Extract {
	return Extract{
		InputDir:       "txt_data",
		OutputDir:      "csv_data",
		Format:         "csv",
		Provider:       "gemini",
		APIKeyFile:     "api_keys/gemini.txt",
		PromptTemplate: "prompts/cleanup.txt",
	}
}
