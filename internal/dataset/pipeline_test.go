package dataset

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"stressload/internal/config"
)

const (
	stressFixture = "Gender,Age,Do you get irritated easily?\n0,20,3\n1,21,4\n1,19,2\n"
	levelsFixture = "anxiety_level,stress_level\n14,1\n8,0\n20,2\n"
)

func writeFixtures(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	stressPath := filepath.Join(dir, "Stress_Dataset.csv")
	levelsPath := filepath.Join(dir, "StressLevelDataset.csv")
	if err := os.WriteFile(stressPath, []byte(stressFixture), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(levelsPath, []byte(levelsFixture), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, stressPath, levelsPath
}

func TestRun_JSONExport(t *testing.T) {
	dir, stressPath, levelsPath := writeFixtures(t)
	outPath := filepath.Join(dir, "out.json")

	cfg := &config.Config{
		StressCSV: stressPath,
		LevelsCSV: levelsPath,
		OutPath:   outPath,
		Orient:    "records",
		Format:    "json",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}

	summary, err := Run(zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RowsMerged != 3 || summary.ColsMerged != 5 {
		t.Errorf("summary shape %dx%d, want 3x5", summary.RowsMerged, summary.ColsMerged)
	}
	if summary.RunID == "" || summary.StressSHA256 == "" {
		t.Error("summary missing run id or fingerprint")
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0]["irritability"] != float64(3) {
		t.Errorf("renamed column value = %v, want 3", records[0]["irritability"])
	}
	if records[2]["stress_level"] != float64(2) {
		t.Errorf("stress_level = %v, want 2", records[2]["stress_level"])
	}
}

func TestRun_MissingSource(t *testing.T) {
	dir, stressPath, _ := writeFixtures(t)

	cfg := &config.Config{
		StressCSV: stressPath,
		LevelsCSV: filepath.Join(dir, "nope.csv"),
		OutPath:   filepath.Join(dir, "out.json"),
		Orient:    "records",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}

	_, err := Run(zerolog.Nop(), cfg)
	var pe *PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PipelineError, got %v", err)
	}
	if pe.Phase != "load" {
		t.Errorf("phase = %q, want load", pe.Phase)
	}
	if _, statErr := os.Stat(cfg.OutPath); !os.IsNotExist(statErr) {
		t.Error("output file should not exist after load failure")
	}
}

func TestRun_RowCountMismatch(t *testing.T) {
	dir, stressPath, _ := writeFixtures(t)
	shortPath := filepath.Join(dir, "short.csv")
	if err := os.WriteFile(shortPath, []byte("anxiety_level,stress_level\n14,1\n8,0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		StressCSV: stressPath,
		LevelsCSV: shortPath,
		OutPath:   filepath.Join(dir, "out.json"),
		Orient:    "records",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}

	_, err := Run(zerolog.Nop(), cfg)
	var pe *PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PipelineError, got %v", err)
	}
	if pe.Phase != "merge" {
		t.Errorf("phase = %q, want merge", pe.Phase)
	}
	if !errors.Is(err, ErrRowCountMismatch) {
		t.Errorf("expected ErrRowCountMismatch in chain, got %v", err)
	}
}

func TestRun_ValidationFailure(t *testing.T) {
	dir, stressPath, _ := writeFixtures(t)
	nullPath := filepath.Join(dir, "nulls.csv")
	if err := os.WriteFile(nullPath, []byte("anxiety_level,stress_level\n14,1\n,0\n20,2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		StressCSV: stressPath,
		LevelsCSV: nullPath,
		OutPath:   filepath.Join(dir, "out.json"),
		Orient:    "records",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}

	_, err := Run(zerolog.Nop(), cfg)
	var pe *PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PipelineError, got %v", err)
	}
	if pe.Phase != "validate" {
		t.Errorf("phase = %q, want validate", pe.Phase)
	}
	if _, statErr := os.Stat(cfg.OutPath); !os.IsNotExist(statErr) {
		t.Error("export should be skipped after validation failure")
	}
}
