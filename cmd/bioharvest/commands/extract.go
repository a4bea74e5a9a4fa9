package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parldata/bioharvest/internal/cleanup"
	"github.com/parldata/bioharvest/internal/config"
	"github.com/parldata/bioharvest/internal/llm"
	"github.com/parldata/bioharvest/internal/logger"
	"github.com/parldata/bioharvest/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract career data from paired names/bio text files",
	Long: `Pair every {base}_Names.txt file in the input directory with its
{base}_Bio.txt file, match each listed member to a biography entry,
and write one result file per pair with a row per member.

A names file that yields no members produces no output. A missing bio
file still produces a row per member, with empty career columns. With
--cleanup, each non-empty career excerpt goes through an LLM pass that
fixes OCR artifacts; the prompt template file must exist, while a
missing API key only degrades the calls to error cells.

Examples:
  # Defaults: txt_data/ to csv_data/ as CSV
  bioharvest extract

  # JSON Lines output
  bioharvest extract -i txt_data -o out -f jsonl

  # Cleanup with Anthropic instead of Gemini
  bioharvest extract --cleanup -p anthropic --api-key-file api_keys/anthropic.txt`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	defaults := config.DefaultExtract()
	flags := extractCmd.Flags()

	flags.StringP("input", "i", defaults.InputDir, "directory scanned for *_Names.txt files")
	flags.StringP("output", "o", defaults.OutputDir, "directory receiving the result files")
	flags.StringP("format", "f", defaults.Format, "output format: csv, json, jsonl, yaml")
	flags.Bool("cleanup", false, "run career excerpts through an LLM cleanup pass")
	flags.StringP("provider", "p", defaults.Provider, "cleanup provider: gemini, anthropic, openai, ollama")
	flags.StringP("model", "m", "", "model name (defaults to the provider's default)")
	flags.String("api-key-file", defaults.APIKeyFile, "file the provider API key is read from")
	flags.String("prompt-template", defaults.PromptTemplate, "cleanup prompt template file")

	_ = viper.BindPFlag("provider", flags.Lookup("provider"))
	_ = viper.BindPFlag("model", flags.Lookup("model"))
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Extract{}
	cfg.InputDir, _ = cmd.Flags().GetString("input")
	cfg.OutputDir, _ = cmd.Flags().GetString("output")
	cfg.Format, _ = cmd.Flags().GetString("format")
	cfg.Cleanup, _ = cmd.Flags().GetBool("cleanup")
	cfg.Provider = viper.GetString("provider")
	cfg.Model = viper.GetString("model")
	cfg.APIKeyFile, _ = cmd.Flags().GetString("api-key-file")
	cfg.PromptTemplate, _ = cmd.Flags().GetString("prompt-template")

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	var cleaner *cleanup.Cleaner
	if cfg.Cleanup {
		var err error
		cleaner, err = buildCleaner(cfg)
		if err != nil {
			logger.Error("failed to set up cleanup", "error", err)
			return err
		}
	}

	p := pipeline.NewExtractPipeline(cfg, cleaner)
	return p.Run(ctx)
}

// buildCleaner assembles the LLM cleanup pass. A missing prompt template is
// a hard error; a missing or empty API key degrades every cleanup call to an
// error result so the run still produces rows. Ollama needs no key and is
// never degraded for a missing key file.
func buildCleaner(cfg config.Extract) (*cleanup.Cleaner, error) {
	var key string
	if llm.RequiresAPIKey(cfg.Provider) {
		var err error
		key, err = readAPIKey(cfg.APIKeyFile)
		if err != nil {
			logger.Warn("cleanup unavailable", "error", err)
			if _, tmplErr := cleanup.LoadTemplate(cfg.PromptTemplate); tmplErr != nil {
				return nil, tmplErr
			}
			return cleanup.Unavailable(err.Error()), nil
		}
	}

	providerCfg := llm.DefaultProviderConfig()
	providerCfg.APIKey = key
	providerCfg.Model = cfg.Model
	if providerCfg.Model == "" {
		providerCfg.Model = llm.GetDefaultModel(cfg.Provider)
	}

	provider, err := llm.NewProvider(cfg.Provider, providerCfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("cleanup provider ready", "provider", provider.Name(), "model", providerCfg.Model)
	return cleanup.New(provider, cfg.PromptTemplate)
}

// readAPIKey loads the provider key from its file. Environment keys bound
// through viper take precedence so CI and one-off runs need no key file.
func readAPIKey(path string) (string, error) {
	if key := viper.GetString("api_key"); key != "" {
		return key, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("API key file %s: %w", path, err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file %s is empty", path)
	}
	return key, nil
}
