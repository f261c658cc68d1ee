package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"stressload/internal/dataset"
	"stressload/internal/db"
	"stressload/internal/exitcode"
	"stressload/internal/logging"
	"stressload/internal/model"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load the merged table into Postgres or SQLite",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.Driver, "driver", "postgres", "Sink driver: postgres or sqlite")
	f.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	f.StringVar(&cfg.DBPath, "db", "", "SQLite database path (sqlite driver)")
	f.StringVar(&cfg.Table, "table", "stress_responses", "Sink table name")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := applyConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file invalid")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithSink(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	merged, summary, err := dataset.LoadMerged(log, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("pipeline failed")
		os.Exit(exitcode.ValidationError)
	}

	recs, err := model.FromFrame(merged)
	if err != nil {
		log.Error().Err(err).Msg("record binding failed")
		os.Exit(exitcode.ValidationError)
	}
	runID, err := uuid.Parse(summary.RunID)
	if err != nil {
		log.Error().Err(err).Msg("bad run id")
		os.Exit(exitcode.SinkError)
	}

	var rows int64
	switch cfg.Driver {
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			os.Exit(exitcode.DBConnError)
		}
		defer pool.Close()
		rows, err = db.LoadPostgres(ctx, pool, log, cfg.Table, runID, recs)
		if err != nil {
			log.Error().Err(err).Msg("postgres load failed")
			os.Exit(exitcode.SinkError)
		}
	case "sqlite":
		rows, err = db.LoadSQLite(cfg.DBPath, log, cfg.Table, runID, recs)
		if err != nil {
			log.Error().Err(err).Msg("sqlite load failed")
			os.Exit(exitcode.SinkError)
		}
	}

	fmt.Printf("Load complete: %d rows into %s (%s)\n", rows, cfg.Table, cfg.Driver)
	return nil
}
