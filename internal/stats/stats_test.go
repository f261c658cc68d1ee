package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestVarianceStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 4.0, Variance(x), 1e-9)
	assert.InDelta(t, 2.0, Std(x), 1e-9)
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, 1, 4, 1, 5})
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 5.0, max)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 3, 1}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 0.0, Median(nil))

	// input must not be reordered
	x := []float64{5, 3, 1}
	Median(x)
	assert.Equal(t, []float64{5, 3, 1}, x)
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 1.0, Correlation(x, x), 1e-9)

	y := []float64{5, 4, 3, 2, 1}
	assert.InDelta(t, -1.0, Correlation(x, y), 1e-9)

	constant := []float64{2, 2, 2, 2, 2}
	assert.Equal(t, 0.0, Correlation(x, constant))
	assert.Equal(t, 0.0, Correlation(x, []float64{1, 2}))
}

func TestValueCounts(t *testing.T) {
	counts := ValueCounts([]int64{2, 0, 1, 2, 2, 1})
	require.Len(t, counts, 3)
	assert.Equal(t, Count{Value: 2, N: 3}, counts[0])
	assert.Equal(t, Count{Value: 1, N: 2}, counts[1])
	assert.Equal(t, Count{Value: 0, N: 1}, counts[2])
}

func TestValueCounts_TieBreaksOnValue(t *testing.T) {
	counts := ValueCounts([]int64{1, 0})
	require.Len(t, counts, 2)
	assert.Equal(t, int64(0), counts[0].Value)
}

func TestGroupMeans(t *testing.T) {
	keys := []int64{0, 1, 0, 1}
	vals := []float64{1, 10, 3, 20}
	means := GroupMeans(keys, vals)
	require.Len(t, means, 2)
	assert.InDelta(t, 2.0, means[0], 1e-9)
	assert.InDelta(t, 15.0, means[1], 1e-9)
}
