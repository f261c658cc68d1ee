// Package report computes the well-being KPIs over the merged table:
// average stress, stress by gender, level distribution, and the factors
// most correlated with the stress label.
package report

import (
	"fmt"
	"io"
	"sort"

	"stressload/internal/frame"
	"stressload/internal/model"
	"stressload/internal/stats"
)

// Correlation pairs a feature column with its Pearson r against the label.
type Correlation struct {
	Column string
	R      float64
}

// ColumnSummary is the describe() row for one feature column.
type ColumnSummary struct {
	Column string
	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64
}

// Report holds the computed KPIs for one run.
type Report struct {
	Rows            int
	AvgStress       float64
	StressByGender  map[int64]float64
	LevelCounts     []stats.Count
	HighStressCount int
	TopCorrelations []Correlation
	Summaries       []ColumnSummary
}

// Build computes the KPIs over a validated merged frame. features selects
// the columns ranked by correlation; topK limits how many are reported.
func Build(f *frame.Frame, features []string, topK int) (*Report, error) {
	label, err := f.Ints(model.LabelColumn)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	labelF, err := f.Floats(model.LabelColumn)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	gender, err := f.Ints("gender")
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	r := &Report{
		Rows:           f.NumRows(),
		AvgStress:      stats.Mean(labelF),
		StressByGender: stats.GroupMeans(gender, labelF),
		LevelCounts:    stats.ValueCounts(label),
	}
	for _, v := range label {
		if v == 2 {
			r.HighStressCount++
		}
	}

	for _, name := range features {
		col, err := f.Floats(name)
		if err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
		min, max := stats.MinMax(col)
		r.Summaries = append(r.Summaries, ColumnSummary{
			Column: name,
			Mean:   stats.Mean(col),
			Std:    stats.Std(col),
			Min:    min,
			Median: stats.Median(col),
			Max:    max,
		})
		r.TopCorrelations = append(r.TopCorrelations, Correlation{
			Column: name,
			R:      stats.Correlation(col, labelF),
		})
	}
	sort.Slice(r.TopCorrelations, func(i, j int) bool {
		return r.TopCorrelations[i].R > r.TopCorrelations[j].R
	})
	if topK > 0 && len(r.TopCorrelations) > topK {
		r.TopCorrelations = r.TopCorrelations[:topK]
	}
	return r, nil
}

var levelNames = map[int64]string{0: "low", 1: "medium", 2: "high"}

var genderNames = map[int64]string{0: "male", 1: "female"}

// Render prints the report as plain text.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintln(w, "=== stressload report ===")
	fmt.Fprintf(w, "Students:           %d\n", r.Rows)
	fmt.Fprintf(w, "Average stress:     %.2f\n", r.AvgStress)
	fmt.Fprintf(w, "High-stress count:  %d\n", r.HighStressCount)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Average stress by gender:")
	keys := make([]int64, 0, len(r.StressByGender))
	for k := range r.StressByGender {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		name := genderNames[k]
		if name == "" {
			name = fmt.Sprintf("%d", k)
		}
		fmt.Fprintf(w, "  %-8s %.2f\n", name, r.StressByGender[k])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Stress level distribution:")
	for _, c := range r.LevelCounts {
		name := levelNames[c.Value]
		if name == "" {
			name = fmt.Sprintf("%d", c.Value)
		}
		fmt.Fprintf(w, "  %-8s %5d (%.1f%%)\n", name, c.N, 100*float64(c.N)/float64(r.Rows))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Top %d factors correlated with stress:\n", len(r.TopCorrelations))
	for _, c := range r.TopCorrelations {
		fmt.Fprintf(w, "  %-30s %+.3f\n", c.Column, c.R)
	}
}
