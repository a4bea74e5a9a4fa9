package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/parldata/bioharvest/internal/cleanup"
	"github.com/parldata/bioharvest/internal/config"
	"github.com/parldata/bioharvest/internal/extract"
	"github.com/parldata/bioharvest/internal/logger"
	"github.com/parldata/bioharvest/internal/output"
)

const (
	namesSuffix = "_Names.txt"
	bioSuffix   = "_Bio.txt"
)

// ExtractPipeline turns paired names/bio text files into result files,
// one row per name.
type ExtractPipeline struct {
	cfg     config.Extract
	cleaner *cleanup.Cleaner
}

// NewExtractPipeline builds the extraction pipeline. A nil cleaner leaves
// excerpts as extracted.
func NewExtractPipeline(cfg config.Extract, cleaner *cleanup.Cleaner) *ExtractPipeline {
	return &ExtractPipeline{cfg: cfg, cleaner: cleaner}
}

// Run processes every *_Names.txt file in the input directory in sorted
// order. The first unexpected failure stops the run; files already written
// are left in place.
func (p *ExtractPipeline) Run(ctx context.Context) error {
	namesFiles, err := filepath.Glob(filepath.Join(p.cfg.InputDir, "*"+namesSuffix))
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	sort.Strings(namesFiles)
	if len(namesFiles) == 0 {
		logger.Warn("no names files found", "dir", p.cfg.InputDir)
		return nil
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, path := range namesFiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.ProcessFile(ctx, path); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	}

	logger.Info("extraction run complete", "files", len(namesFiles))
	return nil
}

// ProcessFile extracts one names/bio pair into a result file. A pair that
// yields no names produces no output. A missing bio file still produces a
// row per name, with empty career columns.
func (p *ExtractPipeline) ProcessFile(ctx context.Context, namesPath string) error {
	base := filepath.Base(namesPath)
	logger.Info("processing names file", "file", base)

	namesData, err := os.ReadFile(namesPath)
	if err != nil {
		return fmt.Errorf("read names file: %w", err)
	}
	names := extract.Names(string(namesData))
	if len(names) == 0 {
		logger.Warn("no names extracted, skipping", "file", base)
		return nil
	}

	records := make([]extract.Record, len(names))
	for i, name := range names {
		records[i] = extract.NewRecord(name)
	}

	bioPath := strings.TrimSuffix(namesPath, namesSuffix) + bioSuffix
	bioData, err := os.ReadFile(bioPath)
	switch {
	case err == nil:
		bioText := string(bioData)
		bound := extract.Associate(names, extract.BioNames(bioText))
		for i, bioName := range bound {
			if bioName == "" {
				continue
			}
			ex := extract.CareerExcerpts(bioText, bioName)
			records[i].Political = p.cleanExcerpt(ctx, ex.Political)
			records[i].Private = p.cleanExcerpt(ctx, ex.Private)
		}
	case os.IsNotExist(err):
		logger.Warn("bio file not found, writing names only", "file", filepath.Base(bioPath))
	default:
		return fmt.Errorf("read bio file: %w", err)
	}

	outName := strings.TrimSuffix(base, namesSuffix) + output.Extension(output.Format(p.cfg.Format))
	outPath := filepath.Join(p.cfg.OutputDir, outName)
	if err := p.writeRecords(outPath, records); err != nil {
		return err
	}

	logger.Info("wrote result file", "file", outName, "rows", len(records))
	return nil
}

// cleanExcerpt runs the cleanup call when enabled. Cleanup failures land in
// the output cell rather than stopping the file.
func (p *ExtractPipeline) cleanExcerpt(ctx context.Context, excerpt string) string {
	if p.cleaner == nil {
		return excerpt
	}
	res := p.cleaner.Clean(ctx, excerpt)
	if !res.OK() {
		logger.Warn("cleanup call failed", "error", res.ErrMessage())
		return res.ErrMessage()
	}
	return res.Text()
}

func (p *ExtractPipeline) writeRecords(path string, records []extract.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w, err := output.NewWriter(f, output.Format(p.cfg.Format))
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return f.Close()
}
