package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	x := []float64{4, 1, 3, 2}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
		{-5, 1},
		{150, 4},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Percentile(x, c.p), 1e-12, "p=%v", c.p)
	}
	assert.Equal(t, []float64{4, 1, 3, 2}, x, "input must not be reordered")
	assert.Equal(t, 0.0, Percentile(nil, 50))
}

func TestMeanStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, Mean(x), 1e-12)
	// Sample variance is 32/7.
	assert.InDelta(t, math.Sqrt(32.0/7.0), Std(x), 1e-12)
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Std([]float64{3}))
}

func TestMinMaxMedian(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 8, 2})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 8.0, max)
	assert.Equal(t, 2.5, Median([]float64{3, -1, 8, 2}))
	assert.Equal(t, 3.0, Median([]float64{3, 1, 8}))
}

func TestDescribe(t *testing.T) {
	t.Run("ordered quantiles", func(t *testing.T) {
		s := Describe([]float64{5.1, 4.9, 4.7, 4.6, 5.0, 5.4, 4.6, 5.0, 4.4, 4.9})
		assert.Equal(t, 10, s.Count)
		assert.LessOrEqual(t, s.Min, s.Q25)
		assert.LessOrEqual(t, s.Q25, s.Q50)
		assert.LessOrEqual(t, s.Q50, s.Q75)
		assert.LessOrEqual(t, s.Q75, s.Max)
		assert.Equal(t, 4.4, s.Min)
		assert.Equal(t, 5.4, s.Max)
		assert.Len(t, s.Values(), len(SummaryLabels))
	})

	t.Run("empty", func(t *testing.T) {
		s := Describe(nil)
		assert.Zero(t, s.Count)
		assert.True(t, math.IsNaN(s.Mean))
	})
}
