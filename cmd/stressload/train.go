package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stressload/internal/classify"
	"stressload/internal/dataset"
	"stressload/internal/exitcode"
	"stressload/internal/logging"
	"stressload/internal/model"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train and evaluate the baseline stress-level classifier",
	RunE:  runTrain,
}

func init() {
	f := trainCmd.Flags()
	f.IntVar(&cfg.Trees, "trees", 100, "Number of trees in the forest")
	f.IntVar(&cfg.MaxDepth, "max-depth", 0, "Maximum tree depth (0 = unlimited)")
	f.Int64Var(&cfg.Seed, "seed", 42, "Random seed for split and training")
	f.Float64Var(&cfg.TestRatio, "test-ratio", 0.2, "Fraction of rows held out for testing")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := applyConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file invalid")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if cfg.TestRatio <= 0 || cfg.TestRatio >= 1 {
		log.Error().Float64("test_ratio", cfg.TestRatio).Msg("--test-ratio must be in (0, 1)")
		os.Exit(exitcode.UsageError)
	}

	merged, _, err := dataset.LoadMerged(log, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("pipeline failed")
		os.Exit(exitcode.ValidationError)
	}

	// Assemble the feature matrix column by column.
	cols := make([][]float64, len(cfg.Features))
	for i, name := range cfg.Features {
		col, err := merged.Floats(name)
		if err != nil {
			log.Error().Err(err).Msg("feature extraction failed")
			os.Exit(exitcode.AnalysisError)
		}
		cols[i] = col
	}
	y, err := merged.Ints(model.LabelColumn)
	if err != nil {
		log.Error().Err(err).Msg("label extraction failed")
		os.Exit(exitcode.AnalysisError)
	}
	X := make([][]float64, merged.NumRows())
	for i := range X {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = cols[j][i]
		}
		X[i] = row
	}

	XTrain, XTest, yTrain, yTest := classify.TrainTestSplit(X, y, cfg.TestRatio, cfg.Seed)
	log.Info().
		Int("train_rows", len(XTrain)).
		Int("test_rows", len(XTest)).
		Int("features", len(cfg.Features)).
		Msg("split complete")

	forest := classify.NewForest(classify.ForestConfig{
		Trees:    cfg.Trees,
		MaxDepth: cfg.MaxDepth,
		Seed:     cfg.Seed,
	})
	if err := forest.Fit(XTrain, yTrain); err != nil {
		log.Error().Err(err).Msg("training failed")
		os.Exit(exitcode.AnalysisError)
	}

	yPred := forest.Predict(XTest)
	classes := forest.Classes()

	fmt.Printf("Model accuracy: %.2f%%\n\n", 100*classify.Accuracy(yTest, yPred))

	fmt.Println("Per-class report:")
	fmt.Printf("  %-6s %9s %9s %9s %9s\n", "class", "precision", "recall", "f1", "support")
	for _, r := range classify.PerClassReport(yTest, yPred, classes) {
		fmt.Printf("  %-6d %9.2f %9.2f %9.2f %9d\n", r.Class, r.Precision, r.Recall, r.F1, r.Support)
	}

	fmt.Println("\nConfusion matrix (rows = true, cols = predicted):")
	m := classify.ConfusionMatrix(yTest, yPred, classes)
	fmt.Printf("      ")
	for _, c := range classes {
		fmt.Printf("%6d", c)
	}
	fmt.Println()
	for i, c := range classes {
		fmt.Printf("  %4d", c)
		for j := range classes {
			fmt.Printf("%6d", m[i][j])
		}
		fmt.Println()
	}
	return nil
}
