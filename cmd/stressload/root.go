package main

import (
	"os"

	"github.com/spf13/cobra"

	"stressload/internal/config"
	"stressload/internal/exitcode"
)

var cfg config.Config

var configPath string

var rootCmd = &cobra.Command{
	Use:   "stressload",
	Short: "Student-stress CSV merge, validation, and export toolkit",
	Long: "Merges the questionnaire and psychometric student-stress CSV sources " +
		"into one validated table, then exports, loads, or analyzes it.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.StressCSV, "stress-csv", "", "Path to the questionnaire responses CSV (required)")
	pf.StringVar(&cfg.LevelsCSV, "levels-csv", "", "Path to the psychometric scores CSV (required)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&configPath, "config", "", "Optional YAML config file (required columns, features, table)")
}

// applyConfigFile merges the optional YAML config file into cfg before
// flag validation.
func applyConfigFile() error {
	if configPath == "" {
		return nil
	}
	return cfg.LoadFromFile(configPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
