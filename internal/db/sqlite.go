package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"stressload/internal/model"
)

// LoadSQLite writes all records into a local SQLite database inside one
// transaction, tagged with the run ID. Returns the number of rows written.
func LoadSQLite(path string, log zerolog.Logger, table string, runID uuid.UUID, recs []model.StressRecord) (int64, error) {
	start := time.Now()

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, fmt.Errorf("open sqlite: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(createTableSQL(table, "TEXT")); err != nil {
		return 0, fmt.Errorf("ensure sink table: %w", err)
	}

	cols := SinkColumns()
	placeholders := make([]string, len(cols))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	tx, err := conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("prepare insert: %w", err)
	}

	var rows int64
	for i := range recs {
		values := append([]any{runID.String(), int64(i + 1)}, recs[i].CopyValues()...)
		if _, err := stmt.Exec(values...); err != nil {
			stmt.Close()
			tx.Rollback()
			return 0, fmt.Errorf("insert row %d: %w", i+1, err)
		}
		rows++
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows", rows).
		Str("table", table).
		Str("db", path).
		Str("duration", dur.String()).
		Msg("sqlite load complete")

	return rows, nil
}
