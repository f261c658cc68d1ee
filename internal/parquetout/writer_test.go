package parquetout

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"stressload/internal/model"
)

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged.parquet")
	recs := []model.StressRecord{
		{Gender: 0, Age: 20, StressType: "Eustress", AnxietyLevel: 14, StressLevel: 1},
		{Gender: 1, Age: 21, StressType: "Distress", AnxietyLevel: 20, StressLevel: 2},
	}

	if err := Write(path, recs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	stat, _ := f.Stat()
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		t.Fatalf("open parquet: %v", err)
	}

	reader := parquet.NewGenericReader[model.StressRecord](pf)
	defer reader.Close()

	var got []model.StressRecord
	buf := make([]model.StressRecord, 8)
	for {
		n, readErr := reader.Read(buf)
		got = append(got, buf[:n]...)
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			t.Fatalf("read: %v", readErr)
		}
	}

	if len(got) != len(recs) {
		t.Fatalf("read %d records, want %d", len(got), len(recs))
	}
	if got[0] != recs[0] || got[1] != recs[1] {
		t.Errorf("records do not round-trip: %+v", got)
	}
}
