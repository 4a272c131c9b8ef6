package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medinsight/internal/dataset"
)

func TestCorrelate_MatrixProperties(t *testing.T) {
	ds := testDataset(t)

	corr, err := Correlate(ds)
	require.NoError(t, err)

	n := len(corr.Columns)
	require.Equal(t, len(dataset.Columns), n)
	require.Len(t, corr.Matrix, n)

	for i := 0; i < n; i++ {
		require.Len(t, corr.Matrix[i], n)
		assert.Equal(t, 1.0, corr.Matrix[i][i], "unit diagonal at %d", i)
		for j := 0; j < n; j++ {
			assert.Equal(t, corr.Matrix[i][j], corr.Matrix[j][i], "symmetry at (%d,%d)", i, j)
			assert.GreaterOrEqual(t, corr.Matrix[i][j], -1.0)
			assert.LessOrEqual(t, corr.Matrix[i][j], 1.0)
		}
	}
}

func TestCorrelate_Ranking(t *testing.T) {
	ds := testDataset(t)

	corr, err := Correlate(ds)
	require.NoError(t, err)

	// Charges itself is excluded from the ranking.
	require.Len(t, corr.ChargesRanking, len(dataset.Columns)-1)
	for _, entry := range corr.ChargesRanking {
		assert.NotEqual(t, dataset.ColCharges, entry.Column)
	}

	// Ranking is ordered by absolute correlation, descending.
	for i := 1; i < len(corr.ChargesRanking); i++ {
		assert.GreaterOrEqual(t,
			math.Abs(corr.ChargesRanking[i-1].R),
			math.Abs(corr.ChargesRanking[i].R))
	}

	assert.Equal(t, corr.ChargesRanking[0].Column, corr.StrongestPredictor)
	assert.Equal(t, corr.ChargesRanking[0].R, corr.StrongestR)

	// In the fixture smokers dominate charges.
	assert.Equal(t, dataset.ColSmoker, corr.StrongestPredictor)
}

func TestCorrelation_R(t *testing.T) {
	ds := testDataset(t)
	corr, err := Correlate(ds)
	require.NoError(t, err)

	r, ok := corr.R(dataset.ColBMI, dataset.ColCharges)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, r, -1.0)
	assert.LessOrEqual(t, r, 1.0)

	rSym, ok := corr.R(dataset.ColCharges, dataset.ColBMI)
	assert.True(t, ok)
	assert.Equal(t, r, rSym)

	_, ok = corr.R("bogus", dataset.ColCharges)
	assert.False(t, ok)
}

func TestInterpretCorrelation(t *testing.T) {
	tests := []struct {
		r    float64
		want string
	}{
		{0.9, "Strong"},
		{-0.75, "Strong"},
		{0.6, "Moderate"},
		{-0.5, "Moderate"},
		{0.35, "Weak"},
		{0.1, "Very weak"},
		{0, "Very weak"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InterpretCorrelation(tt.r), "r=%v", tt.r)
	}
}
