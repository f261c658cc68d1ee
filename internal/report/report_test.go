package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stressload/internal/frame"
)

func reportFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f := frame.New()
	add := func(name string, vals ...int64) {
		col := make([]frame.Value, len(vals))
		for i, v := range vals {
			col[i] = frame.Int(v)
		}
		require.NoError(t, f.AddColumn(name, col))
	}
	add("gender", 0, 0, 1, 1)
	// anxiety tracks the label, self_esteem opposes it
	add("anxiety_level", 5, 10, 15, 20)
	add("self_esteem", 20, 15, 10, 5)
	add("stress_level", 0, 1, 2, 2)
	return f
}

func TestBuild(t *testing.T) {
	f := reportFrame(t)
	features := []string{"anxiety_level", "self_esteem"}

	r, err := Build(f, features, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, r.Rows)
	assert.InDelta(t, 1.25, r.AvgStress, 1e-9)
	assert.Equal(t, 2, r.HighStressCount)

	require.Len(t, r.StressByGender, 2)
	assert.InDelta(t, 0.5, r.StressByGender[0], 1e-9)
	assert.InDelta(t, 2.0, r.StressByGender[1], 1e-9)

	require.Len(t, r.TopCorrelations, 2)
	assert.Equal(t, "anxiety_level", r.TopCorrelations[0].Column)
	assert.Positive(t, r.TopCorrelations[0].R)
	assert.Equal(t, "self_esteem", r.TopCorrelations[1].Column)
	assert.Negative(t, r.TopCorrelations[1].R)

	require.Len(t, r.Summaries, 2)
	assert.InDelta(t, 12.5, r.Summaries[0].Mean, 1e-9)
	assert.Equal(t, 5.0, r.Summaries[0].Min)
	assert.Equal(t, 20.0, r.Summaries[0].Max)
}

func TestBuild_TopKLimitsCorrelations(t *testing.T) {
	f := reportFrame(t)
	r, err := Build(f, []string{"anxiety_level", "self_esteem"}, 1)
	require.NoError(t, err)
	require.Len(t, r.TopCorrelations, 1)
	assert.Equal(t, "anxiety_level", r.TopCorrelations[0].Column)
	// summaries are not truncated by topK
	assert.Len(t, r.Summaries, 2)
}

func TestBuild_MissingLabel(t *testing.T) {
	f := frame.New()
	require.NoError(t, f.AddColumn("gender", []frame.Value{frame.Int(0)}))
	_, err := Build(f, nil, 0)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	f := reportFrame(t)
	r, err := Build(f, []string{"anxiety_level"}, 1)
	require.NoError(t, err)

	var buf strings.Builder
	r.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "=== stressload report ===")
	assert.Contains(t, out, "Students:           4")
	assert.Contains(t, out, "Average stress:     1.25")
	assert.Contains(t, out, "male")
	assert.Contains(t, out, "female")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "anxiety_level")
}
