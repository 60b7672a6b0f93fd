package stats

import (
	"math"
	"sort"

	moremath "github.com/aclements/go-moremath/stats"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return moremath.Sample{Xs: x}.Mean()
}

// Std computes the sample standard deviation (n-1 denominator).
func Std(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return moremath.Sample{Xs: x}.StdDev()
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return moremath.Sample{Xs: x}.Bounds()
}

// Median returns the median value of the slice (allocates a copy).
func Median(x []float64) float64 {
	return Percentile(x, 50)
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100),
// interpolating linearly between the two closest ranks.
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	min, max := MinMax(x)
	if p <= 0 {
		return min
	}
	if p >= 100 {
		return max
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}

// Summary holds the descriptive statistics printed for a numeric column.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Describe summarises a column. An empty column yields a zero Count and NaN
// for every statistic.
func Describe(x []float64) Summary {
	if len(x) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	}
	min, max := MinMax(x)
	return Summary{
		Count: len(x),
		Mean:  Mean(x),
		Std:   Std(x),
		Min:   min,
		Q25:   Percentile(x, 25),
		Q50:   Percentile(x, 50),
		Q75:   Percentile(x, 75),
		Max:   max,
	}
}

// Values returns the statistics in the conventional report order:
// count, mean, std, min, 25%, 50%, 75%, max.
func (s Summary) Values() []float64 {
	return []float64{float64(s.Count), s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max}
}

// SummaryLabels names the entries of Summary.Values.
var SummaryLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
