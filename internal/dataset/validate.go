package dataset

import (
	"stressload/internal/frame"
)

// Validation failure reasons, in check order.
const (
	ReasonMissingValues  = "missing values"
	ReasonMissingColumns = "missing columns"
)

// CheckResult reports whether a merged table is usable, and why not.
type CheckResult struct {
	OK             bool
	Reason         string
	NullCells      int
	MissingColumns []string
}

// Check validates the merged table: first a zero-tolerance scan for null
// cells anywhere, then presence of every required column. The first failing
// check decides the reason.
func Check(f *frame.Frame, required []string) CheckResult {
	if n := f.NullCount(); n > 0 {
		return CheckResult{Reason: ReasonMissingValues, NullCells: n}
	}

	var missing []string
	for _, name := range required {
		if !f.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return CheckResult{Reason: ReasonMissingColumns, MissingColumns: missing}
	}

	return CheckResult{OK: true}
}
