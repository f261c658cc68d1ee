package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"stressload/internal/model"
)

// LoadPostgres creates the sink table if needed and COPY-loads all records,
// tagged with the run ID. Returns the number of rows written.
func LoadPostgres(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, table string, runID uuid.UUID, recs []model.StressRecord) (int64, error) {
	start := time.Now()

	if _, err := pool.Exec(ctx, createTableSQL(table, "uuid")); err != nil {
		return 0, fmt.Errorf("ensure sink table: %w", err)
	}

	ch := make(chan copyRow, 256)
	go func() {
		defer close(ch)
		for i := range recs {
			values := append([]any{runID, int64(i + 1)}, recs[i].CopyValues()...)
			select {
			case ch <- copyRow{values: values}:
			case <-ctx.Done():
				return
			}
		}
	}()

	rows, err := pool.CopyFrom(ctx,
		pgx.Identifier{table},
		SinkColumns(),
		NewChannelSource(ch),
	)
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", table, err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows", rows).
		Str("table", table).
		Str("duration", dur.String()).
		Msg("postgres load complete")

	return rows, nil
}
