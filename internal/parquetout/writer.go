// Package parquetout writes the merged table to a Parquet file using the
// typed record schema.
package parquetout

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"stressload/internal/model"
)

// Write creates path and writes all records in one row group.
func Write(path string, recs []model.StressRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	w := parquet.NewGenericWriter[model.StressRecord](f)
	if _, err := w.Write(recs); err != nil {
		w.Close()
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
