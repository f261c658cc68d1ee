// Package dataset implements the merge-and-validate pipeline over the two
// student-stress sources: positional column-wise merge, canonical renaming,
// structural validation, and export.
package dataset

import (
	"errors"
	"fmt"

	"stressload/internal/frame"
)

// The merge is positional: both sources must describe the same individuals
// in the same row order. There is no join key in the data, so equal row
// counts is the one precondition we can enforce.
var (
	ErrRowCountMismatch = errors.New("row count mismatch between sources")
	ErrDuplicateColumn  = errors.New("duplicate column across sources")
)

// Merge concatenates the columns of b after the columns of a, one row per
// individual. Row order is preserved exactly; no reordering and no
// deduplication. Fails when row counts differ or a column name appears in
// both sources.
func Merge(a, b *frame.Frame) (*frame.Frame, error) {
	if a.NumRows() != b.NumRows() {
		return nil, fmt.Errorf("%w: %d vs %d rows", ErrRowCountMismatch, a.NumRows(), b.NumRows())
	}

	merged := frame.New()
	for i := 0; i < a.NumCols(); i++ {
		c := a.ColumnAt(i)
		if err := merged.AddColumn(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	for i := 0; i < b.NumCols(); i++ {
		c := b.ColumnAt(i)
		if a.HasColumn(c.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if err := merged.AddColumn(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	return merged, nil
}
