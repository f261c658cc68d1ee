package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stressload/internal/csvread"
	"stressload/internal/dataset"
	"stressload/internal/exitcode"
	"stressload/internal/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and source stats (no writes)",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := applyConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file invalid")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	stress, err := csvread.Read(cfg.StressCSV)
	if err != nil {
		log.Error().Err(err).Msg("failed to read stress source")
		os.Exit(exitcode.ValidationError)
	}
	levels, err := csvread.Read(cfg.LevelsCSV)
	if err != nil {
		log.Error().Err(err).Msg("failed to read levels source")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Println("=== stressload plan ===")
	fmt.Printf("Stress source:  %s (%d rows x %d cols, %d nulls)\n",
		cfg.StressCSV, stress.NumRows(), stress.NumCols(), stress.NullCount())
	fmt.Printf("Levels source:  %s (%d rows x %d cols, %d nulls)\n",
		cfg.LevelsCSV, levels.NumRows(), levels.NumCols(), levels.NullCount())

	if stress.NumRows() != levels.NumRows() {
		fmt.Printf("\nRow counts differ (%d vs %d): positional merge would fail\n",
			stress.NumRows(), levels.NumRows())
		os.Exit(exitcode.ValidationError)
	}

	merged, err := dataset.Merge(stress, levels)
	if err != nil {
		log.Error().Err(err).Msg("merge check failed")
		os.Exit(exitcode.ValidationError)
	}
	dataset.Canonicalize(merged)

	fmt.Printf("Projected merge: %d rows x %d cols\n", merged.NumRows(), merged.NumCols())

	res := dataset.Check(merged, cfg.RequiredColumns)
	if !res.OK {
		fmt.Printf("Validation: FAILED (%s)\n", res.Reason)
		if res.NullCells > 0 {
			fmt.Printf("  null cells:      %d\n", res.NullCells)
		}
		if len(res.MissingColumns) > 0 {
			fmt.Printf("  missing columns: %v\n", res.MissingColumns)
		}
		os.Exit(exitcode.ValidationError)
	}
	fmt.Println("Validation: OK")
	return nil
}
