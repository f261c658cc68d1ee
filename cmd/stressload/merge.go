package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stressload/internal/dataset"
	"stressload/internal/exitcode"
	"stressload/internal/logging"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge both sources, validate, and export the table",
	RunE:  runMerge,
}

func init() {
	f := mergeCmd.Flags()
	f.StringVar(&cfg.OutPath, "out", "stress_data.json", "Output path")
	f.StringVar(&cfg.Orient, "orient", "records", "JSON orientation: records, columns, split, or values")
	f.StringVar(&cfg.Format, "format", "json", "Output format: json or parquet")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := applyConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file invalid")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := dataset.Run(log, &cfg)
	if err != nil {
		var pe *dataset.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("merge failed")
			if pe.Phase == "export" {
				os.Exit(exitcode.SinkError)
			}
			os.Exit(exitcode.ValidationError)
		}
		log.Error().Err(err).Msg("merge failed")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Printf("Merge complete: %d rows x %d columns -> %s (%.2fs)\n",
		summary.RowsMerged, summary.ColsMerged, summary.OutputPath,
		summary.DurationTotal.Seconds())
	return nil
}
