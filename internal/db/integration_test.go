package db_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"stressload/internal/db"
	"stressload/internal/model"
)

const (
	testPort     = 15433
	testDB       = "stresstest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var testDSN string

// TestMain starts an embedded Postgres only when STRESSLOAD_PG_TEST is set;
// the download needs network access, so the suite skips by default.
func TestMain(m *testing.M) {
	if os.Getenv("STRESSLOAD_PG_TEST") == "" {
		os.Exit(m.Run())
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)
	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

func TestLoadPostgres(t *testing.T) {
	if testDSN == "" {
		t.Skip("set STRESSLOAD_PG_TEST to run the embedded-postgres suite")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS stress_responses"); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	runID := uuid.New()
	recs := []model.StressRecord{
		{Gender: 0, Age: 20, StressType: "Eustress", AnxietyLevel: 14, StressLevel: 1},
		{Gender: 1, Age: 21, StressType: "Distress", AnxietyLevel: 20, StressLevel: 2},
	}

	rows, err := db.LoadPostgres(ctx, pool, zerolog.Nop(), "stress_responses", runID, recs)
	if err != nil {
		t.Fatalf("LoadPostgres: %v", err)
	}
	if rows != int64(len(recs)) {
		t.Fatalf("loaded %d rows, want %d", rows, len(recs))
	}

	var count int64
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM stress_responses WHERE run_id = $1", runID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != int64(len(recs)) {
		t.Errorf("table has %d rows for run, want %d", count, len(recs))
	}

	var stressType string
	var stressLevel int64
	err = pool.QueryRow(ctx,
		"SELECT stress_type, stress_level FROM stress_responses WHERE source_row = 2").
		Scan(&stressType, &stressLevel)
	if err != nil {
		t.Fatalf("query row: %v", err)
	}
	if stressType != "Distress" || stressLevel != 2 {
		t.Errorf("row 2 = (%q, %d), want (Distress, 2)", stressType, stressLevel)
	}
}
