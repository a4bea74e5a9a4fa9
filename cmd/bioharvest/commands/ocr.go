package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parldata/bioharvest/internal/config"
	"github.com/parldata/bioharvest/internal/logger"
	"github.com/parldata/bioharvest/internal/ocr"
	"github.com/parldata/bioharvest/internal/pdfdoc"
	"github.com/parldata/bioharvest/internal/pipeline"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr",
	Short: "Convert scanned PDFs to text files",
	Long: `Render every page of each PDF in the input directory and recognize
its text with Tesseract.

Each document produces one text file with a summary header and a
delimited block per page. Pages that yield nothing at the configured
confidence are retried with image preprocessing and finally re-read at
a low confidence floor. Documents where every page stays empty produce
no output file.

Examples:
  # Defaults: pdf_data/ to txt_data/ at 144 DPI
  bioharvest ocr

  # Born-digital documents: use the embedded text layer when present
  bioharvest ocr -i pdf_data -o txt_data --text-layer

  # German register
  bioharvest ocr -i pdf_data -o txt_data --lang deu`,
	RunE: runOCR,
}

func init() {
	rootCmd.AddCommand(ocrCmd)

	defaults := config.DefaultOCR()
	flags := ocrCmd.Flags()

	flags.StringP("input", "i", defaults.InputDir, "directory scanned for *.pdf files")
	flags.StringP("output", "o", defaults.OutputDir, "directory receiving the text files")
	flags.Float64("dpi", defaults.DPI, "page rendering resolution")
	flags.Float64("confidence", defaults.Confidence, "minimum per-line confidence in [0,1]")
	flags.Bool("preprocess", defaults.Preprocess, "clean up page images before recognition (use --preprocess=false to disable)")
	flags.Bool("text-layer", defaults.TextLayer, "use the embedded text layer when the PDF has one")
	flags.StringSlice("lang", defaults.Languages, "recognition language(s)")
}

func runOCR(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.OCR{}
	cfg.InputDir, _ = cmd.Flags().GetString("input")
	cfg.OutputDir, _ = cmd.Flags().GetString("output")
	cfg.DPI, _ = cmd.Flags().GetFloat64("dpi")
	cfg.Confidence, _ = cmd.Flags().GetFloat64("confidence")
	cfg.Preprocess, _ = cmd.Flags().GetBool("preprocess")
	cfg.TextLayer, _ = cmd.Flags().GetBool("text-layer")
	cfg.Languages, _ = cmd.Flags().GetStringSlice("lang")

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	engine, err := ocr.NewTesseract(cfg.Languages...)
	if err != nil {
		logger.Error("failed to initialize recognition engine", "error", err)
		return err
	}
	defer func() { _ = engine.Close() }()

	logger.Debug("OCR run starting",
		"input", cfg.InputDir,
		"output", cfg.OutputDir,
		"dpi", cfg.DPI,
		"confidence", cfg.Confidence,
		"languages", cfg.Languages)

	p := pipeline.NewOCRPipeline(cfg, engine, pdfdoc.NewRenderer())
	return p.Run(ctx)
}
