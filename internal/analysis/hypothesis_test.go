package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTestInd(t *testing.T) {
	// x = {1,2}, y = {4,6}: pooled variance gives t^2 = 9.8 with df = 2.
	// For df = 2 the two-sided p-value has the closed form
	// 1 - |t|/sqrt(2+t^2).
	result, err := TTestInd([]float64{1, 2}, []float64{4, 6}, 0.05)
	require.NoError(t, err)

	wantT := -math.Sqrt(9.8)
	wantP := 1 - math.Sqrt(9.8)/math.Sqrt(2+9.8)

	assert.Equal(t, 2, result.DF)
	assert.InDelta(t, wantT, result.T, 1e-12)
	assert.InDelta(t, wantP, result.P, 1e-9)
	assert.False(t, result.Significant)
}

func TestTTestInd_Symmetry(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}

	xy, err := TTestInd(x, y, 0.05)
	require.NoError(t, err)
	yx, err := TTestInd(y, x, 0.05)
	require.NoError(t, err)

	assert.InDelta(t, -yx.T, xy.T, 1e-12)
	assert.InDelta(t, yx.P, xy.P, 1e-12)
	assert.InDelta(t, -math.Sqrt(3), xy.T, 1e-12)
}

func TestTTestInd_SeparatedGroups(t *testing.T) {
	x := []float64{100, 101, 102, 99, 100, 101}
	y := []float64{1, 2, 1, 2, 1, 2}

	result, err := TTestInd(x, y, 0.05)
	require.NoError(t, err)

	assert.True(t, result.Significant)
	assert.Less(t, result.P, 0.001)
	assert.Greater(t, result.T, 10.0)
}

func TestTTestInd_Errors(t *testing.T) {
	_, err := TTestInd([]float64{1}, []float64{2, 3}, 0.05)
	assert.Error(t, err, "too few samples")

	_, err = TTestInd([]float64{5, 5}, []float64{5, 5}, 0.05)
	assert.Error(t, err, "zero pooled variance")
}

func TestOneWayANOVA(t *testing.T) {
	// Groups {1,2,3}, {2,3,4}, {3,4,5}: F = 3 with df (2, 6). For
	// d1 = 2 the survival function is (1 + d1*f/d2)^(-d2/2), so
	// p = (1 + 2*3/6)^-3 = 1/8 exactly.
	result, err := OneWayANOVA(0.05,
		[]float64{1, 2, 3},
		[]float64{2, 3, 4},
		[]float64{3, 4, 5},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, result.DFBetween)
	assert.Equal(t, 6, result.DFWithin)
	assert.InDelta(t, 3.0, result.F, 1e-12)
	assert.InDelta(t, 0.125, result.P, 1e-9)
	assert.False(t, result.Significant)
}

func TestOneWayANOVA_SeparatedGroups(t *testing.T) {
	result, err := OneWayANOVA(0.05,
		[]float64{1, 2, 1, 2},
		[]float64{50, 51, 50, 51},
		[]float64{100, 101, 100, 101},
	)
	require.NoError(t, err)

	assert.True(t, result.Significant)
	assert.Less(t, result.P, 1e-6)
}

func TestOneWayANOVA_IdenticalMeans(t *testing.T) {
	result, err := OneWayANOVA(0.05,
		[]float64{1, 2, 3},
		[]float64{1, 2, 3},
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, result.F, 1e-12)
	assert.False(t, result.Significant)
}

func TestOneWayANOVA_Errors(t *testing.T) {
	_, err := OneWayANOVA(0.05, []float64{1, 2})
	assert.Error(t, err, "one group")

	_, err = OneWayANOVA(0.05, []float64{1, 2}, nil)
	assert.Error(t, err, "empty group")

	_, err = OneWayANOVA(0.05, []float64{1}, []float64{2})
	assert.Error(t, err, "no residual degrees of freedom")

	_, err = OneWayANOVA(0.05, []float64{5, 5}, []float64{5, 5})
	assert.Error(t, err, "zero within-group variance")
}
