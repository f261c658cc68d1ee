package main

import (
	"os"

	"github.com/spf13/cobra"

	"stressload/internal/dataset"
	"stressload/internal/exitcode"
	"stressload/internal/logging"
	"stressload/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print well-being KPIs over the merged table",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVar(&cfg.TopK, "top", 5, "Number of top correlated factors to report")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := applyConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file invalid")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	merged, _, err := dataset.LoadMerged(log, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("pipeline failed")
		os.Exit(exitcode.ValidationError)
	}

	rep, err := report.Build(merged, cfg.Features, cfg.TopK)
	if err != nil {
		log.Error().Err(err).Msg("report failed")
		os.Exit(exitcode.AnalysisError)
	}
	rep.Render(os.Stdout)
	return nil
}
