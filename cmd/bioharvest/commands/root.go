// Package commands implements the CLI commands for bioharvest.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "bioharvest",
	Short: "OCR and biography extraction for scanned legislative registers",
	Long: `Bioharvest turns scanned legislative-record registers into structured
biography data.

The ocr command renders each PDF page, recognizes its text with
Tesseract, and writes one text file per document. The extract command
pairs the resulting names and biography files, matches each listed
member to a biography entry, and writes one row per member with the
political and private career excerpts.

Examples:
  # OCR every PDF in pdf_data/ into txt_data/
  bioharvest ocr -i pdf_data -o txt_data

  # Higher resolution scan with a stricter confidence cut
  bioharvest ocr -i pdf_data -o txt_data --dpi 300 --confidence 0.5

  # Extract career data from paired names/bio files
  bioharvest extract -i txt_data -o csv_data

  # Extract with LLM cleanup of the OCR excerpts
  bioharvest extract -i txt_data -o csv_data --cleanup -p gemini`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.bioharvest.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".bioharvest")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("BIOHARVEST")
	viper.AutomaticEnv()

	// Also check common API key env vars
	_ = viper.BindEnv("api_key", "GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENAI_API_KEY")

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
