package config

import (
	"fmt"
	"os"

	"stressload/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a stressload run.
type Config struct {
	StressCSV string // questionnaire responses source
	LevelsCSV string // psychometric scores source
	OutPath   string
	Orient    string // json orientation: records, columns, split, values
	Format    string // "json" or "parquet"
	LogFormat string // "text" or "json"

	// Sink options
	Driver string // "postgres" or "sqlite"
	DSN    string
	DBPath string
	Table  string

	// Analysis options
	TopK      int
	Trees     int
	MaxDepth  int
	Seed      int64
	TestRatio float64

	RequiredColumns []string `yaml:"required_columns"`
	Features        []string `yaml:"features"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	RequiredColumns []string `yaml:"required_columns"`
	Features        []string `yaml:"features"`
	Table           string   `yaml:"table"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if len(yc.RequiredColumns) > 0 {
		c.RequiredColumns = yc.RequiredColumns
	}
	if len(yc.Features) > 0 {
		c.Features = yc.Features
	}
	if yc.Table != "" {
		c.Table = yc.Table
	}
	return c.validateColumns()
}

// validateColumns checks that configured column names belong to the
// canonical merged schema, applying defaults where lists are empty.
func (c *Config) validateColumns() error {
	if len(c.RequiredColumns) == 0 {
		c.RequiredColumns = []string{"gender", "age", model.LabelColumn}
	}
	if len(c.Features) == 0 {
		c.Features = model.FeatureColumns()
	}
	for _, name := range c.RequiredColumns {
		if !model.KnownColumn(name) {
			return fmt.Errorf("unknown required column %q in config", name)
		}
	}
	for _, name := range c.Features {
		if !model.KnownColumn(name) {
			return fmt.Errorf("unknown feature column %q in config", name)
		}
		if name == model.StressTypeColumn {
			return fmt.Errorf("feature column %q is not numeric", name)
		}
	}
	return nil
}

// Validate checks required fields and applies column defaults.
func (c *Config) Validate() error {
	if c.StressCSV == "" {
		return fmt.Errorf("--stress-csv is required")
	}
	if c.LevelsCSV == "" {
		return fmt.Errorf("--levels-csv is required")
	}
	return c.validateColumns()
}

// ValidateWithSink checks source and sink fields.
func (c *Config) ValidateWithSink() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.Driver {
	case "postgres":
		if c.DSN == "" {
			return fmt.Errorf("--dsn or DATABASE_URL is required for the postgres driver")
		}
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("--db is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want postgres or sqlite)", c.Driver)
	}
	if c.Table == "" {
		c.Table = "stress_responses"
	}
	return nil
}
