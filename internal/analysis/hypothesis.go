package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	apperrors "medinsight/internal/errors"
)

// TTestResult is the outcome of a two-sided independent two-sample t-test.
type TTestResult struct {
	T           float64 `json:"t_statistic"`
	P           float64 `json:"p_value"`
	DF          int     `json:"df"`
	Significant bool    `json:"significant"`
}

// AnovaResult is the outcome of a one-way ANOVA.
type AnovaResult struct {
	F           float64 `json:"f_statistic"`
	P           float64 `json:"p_value"`
	DFBetween   int     `json:"df_between"`
	DFWithin    int     `json:"df_within"`
	Significant bool    `json:"significant"`
}

// TTestInd performs an independent two-sample t-test with pooled variance
// (equal variances assumed) and a two-sided p-value from Student's t
// distribution. Significance is judged at alpha.
func TTestInd(x, y []float64, alpha float64) (TTestResult, error) {
	n1, n2 := len(x), len(y)
	if n1 < 2 || n2 < 2 {
		return TTestResult{}, apperrors.NewAnalysisError("t-test requires at least two samples per group", nil)
	}

	m1, m2 := stat.Mean(x, nil), stat.Mean(y, nil)
	v1, v2 := stat.Variance(x, nil), stat.Variance(y, nil)

	df := n1 + n2 - 2
	pooled := (float64(n1-1)*v1 + float64(n2-1)*v2) / float64(df)
	se := math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return TTestResult{}, apperrors.NewAnalysisError("t-test has zero pooled variance", nil)
	}

	t := (m1 - m2) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	p := 2 * dist.CDF(-math.Abs(t))

	return TTestResult{
		T:           t,
		P:           p,
		DF:          df,
		Significant: p < alpha,
	}, nil
}

// OneWayANOVA tests whether the group means differ, with the p-value taken
// from the F distribution. At least two groups of at least one sample each
// are required, and the total sample count must exceed the group count.
func OneWayANOVA(alpha float64, groups ...[]float64) (AnovaResult, error) {
	k := len(groups)
	if k < 2 {
		return AnovaResult{}, apperrors.NewAnalysisError("anova requires at least two groups", nil)
	}

	total := 0
	var grandSum float64
	for _, g := range groups {
		if len(g) == 0 {
			return AnovaResult{}, apperrors.NewAnalysisError("anova group is empty", nil)
		}
		total += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	if total <= k {
		return AnovaResult{}, apperrors.NewAnalysisError("anova requires more samples than groups", nil)
	}
	grandMean := grandSum / float64(total)

	var ssBetween, ssWithin float64
	for _, g := range groups {
		mean := stat.Mean(g, nil)
		ssBetween += float64(len(g)) * (mean - grandMean) * (mean - grandMean)
		for _, v := range g {
			ssWithin += (v - mean) * (v - mean)
		}
	}

	dfBetween := k - 1
	dfWithin := total - k
	msWithin := ssWithin / float64(dfWithin)
	if msWithin == 0 {
		return AnovaResult{}, apperrors.NewAnalysisError("anova has zero within-group variance", nil)
	}

	f := (ssBetween / float64(dfBetween)) / msWithin
	dist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}
	p := 1 - dist.CDF(f)

	return AnovaResult{
		F:           f,
		P:           p,
		DFBetween:   dfBetween,
		DFWithin:    dfWithin,
		Significant: p < alpha,
	}, nil
}
