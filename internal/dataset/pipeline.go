package dataset

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"stressload/internal/config"
	"stressload/internal/csvread"
	"stressload/internal/frame"
	"stressload/internal/jsonout"
	"stressload/internal/model"
	"stressload/internal/parquetout"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Summary captures metrics from a single pipeline run.
type Summary struct {
	RunID         string
	StressPath    string
	LevelsPath    string
	StressSHA256  string
	LevelsSHA256  string
	RowsStress    int
	ColsStress    int
	RowsLevels    int
	ColsLevels    int
	RowsMerged    int
	ColsMerged    int
	OutputPath    string
	DurationLoad  time.Duration
	DurationTotal time.Duration
}

// LoadMerged runs the read-only half of the pipeline: load both sources,
// merge positionally, canonicalize names, validate. The returned frame is
// usable by every downstream consumer (export, report, train, load).
func LoadMerged(log zerolog.Logger, cfg *config.Config) (*frame.Frame, *Summary, error) {
	totalStart := time.Now()
	summary := &Summary{
		RunID:      uuid.New().String(),
		StressPath: cfg.StressCSV,
		LevelsPath: cfg.LevelsCSV,
	}
	log = log.With().Str("run_id", summary.RunID).Logger()

	// Phase 1: Load
	loadStart := time.Now()
	stress, err := csvread.Read(cfg.StressCSV)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "load", Err: err}
	}
	levels, err := csvread.Read(cfg.LevelsCSV)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "load", Err: err}
	}
	summary.RowsStress, summary.ColsStress = stress.NumRows(), stress.NumCols()
	summary.RowsLevels, summary.ColsLevels = levels.NumRows(), levels.NumCols()
	summary.DurationLoad = time.Since(loadStart)

	if sha, err := csvread.Fingerprint(cfg.StressCSV); err == nil {
		summary.StressSHA256 = sha
	}
	if sha, err := csvread.Fingerprint(cfg.LevelsCSV); err == nil {
		summary.LevelsSHA256 = sha
	}

	log.Info().
		Int("stress_rows", summary.RowsStress).
		Int("levels_rows", summary.RowsLevels).
		Dur("duration", summary.DurationLoad).
		Msg("sources loaded")

	// Phase 2: Merge + canonical rename
	merged, err := Merge(stress, levels)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "merge", Err: err}
	}
	Canonicalize(merged)
	summary.RowsMerged, summary.ColsMerged = merged.NumRows(), merged.NumCols()

	log.Info().
		Int("rows", summary.RowsMerged).
		Int("cols", summary.ColsMerged).
		Msg("merge complete")

	// Phase 3: Validate
	res := Check(merged, cfg.RequiredColumns)
	if !res.OK {
		log.Error().
			Str("reason", res.Reason).
			Int("null_cells", res.NullCells).
			Strs("missing_columns", res.MissingColumns).
			Msg("validation failed")
		return nil, nil, &PipelineError{
			Phase: "validate",
			Err:   fmt.Errorf("validation failed: %s", res.Reason),
		}
	}
	log.Info().Msg("validation passed")

	summary.DurationTotal = time.Since(totalStart)
	return merged, summary, nil
}

// Run executes the full pipeline: load → merge → validate → export. The
// export format is JSON (orientation per config) or Parquet.
func Run(log zerolog.Logger, cfg *config.Config) (*Summary, error) {
	totalStart := time.Now()

	merged, summary, err := LoadMerged(log, cfg)
	if err != nil {
		return nil, err
	}

	// Phase 4: Export
	switch cfg.Format {
	case "", "json":
		orient, err := jsonout.ParseOrient(cfg.Orient)
		if err != nil {
			return nil, &PipelineError{Phase: "export", Err: err}
		}
		doc, err := jsonout.Marshal(merged, orient)
		if err != nil {
			return nil, &PipelineError{Phase: "export", Err: err}
		}
		if err := os.WriteFile(cfg.OutPath, doc, 0o644); err != nil {
			return nil, &PipelineError{Phase: "export", Err: err}
		}
	case "parquet":
		recs, err := model.FromFrame(merged)
		if err != nil {
			return nil, &PipelineError{Phase: "export", Err: err}
		}
		if err := parquetout.Write(cfg.OutPath, recs); err != nil {
			return nil, &PipelineError{Phase: "export", Err: err}
		}
	default:
		return nil, &PipelineError{Phase: "export", Err: fmt.Errorf("unknown format %q", cfg.Format)}
	}

	summary.OutputPath = cfg.OutPath
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Str("run_id", summary.RunID).
		Str("out", summary.OutputPath).
		Int("rows", summary.RowsMerged).
		Int("cols", summary.ColsMerged).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("pipeline complete")

	return summary, nil
}
