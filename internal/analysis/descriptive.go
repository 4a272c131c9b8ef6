// Package analysis computes the descriptive and inferential statistics for
// the cleaned insurance dataset and assembles them into an exportable report.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ColumnStats holds the descriptive statistics of one numeric column.
// Variance and standard deviation are sample statistics (n-1 denominator);
// kurtosis is excess kurtosis.
type ColumnStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Mode     float64 `json:"mode"`
	Std      float64 `json:"std"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Describe computes the descriptive statistics of a column.
func Describe(x []float64) ColumnStats {
	if len(x) == 0 {
		return ColumnStats{}
	}

	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	stats := ColumnStats{
		Count:  len(x),
		Mean:   stat.Mean(x, nil),
		Median: percentileSorted(sorted, 50),
		Mode:   modeFloat(x),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     percentileSorted(sorted, 25),
		Q3:     percentileSorted(sorted, 75),
	}

	if len(x) > 1 {
		stats.Variance = stat.Variance(x, nil)
		stats.Std = stat.StdDev(x, nil)
		stats.Skewness = stat.Skew(x, nil)
		stats.Kurtosis = stat.ExKurtosis(x, nil)
	}

	return stats
}

// percentileSorted returns the p-th percentile of a sorted slice using
// linear interpolation between the two nearest ranks.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	rank := p / 100 * float64(n-1)
	lower := int(rank)
	weight := rank - float64(lower)
	if lower+1 >= n {
		return sorted[lower]
	}
	return sorted[lower]*(1-weight) + sorted[lower+1]*weight
}

// modeFloat returns the most frequent value, preferring the smallest on
// ties so the result is deterministic.
func modeFloat(x []float64) float64 {
	counts := make(map[float64]int, len(x))
	for _, v := range x {
		counts[v]++
	}

	best, bestCount := x[0], 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}
