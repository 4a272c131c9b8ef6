package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"medinsight/internal/dataset"
	apperrors "medinsight/internal/errors"
)

// CorrelationEntry is one column's Pearson correlation with charges.
type CorrelationEntry struct {
	Column string  `json:"column"`
	R      float64 `json:"r"`
}

// Correlation holds the Pearson correlation matrix over the numeric columns
// and the ranking of predictors of charges by absolute correlation.
type Correlation struct {
	Columns            []string           `json:"columns"`
	Matrix             [][]float64        `json:"matrix"`
	ChargesRanking     []CorrelationEntry `json:"charges_ranking"`
	StrongestPredictor string             `json:"strongest_predictor"`
	StrongestR         float64            `json:"strongest_r"`
	Interpretation     string             `json:"interpretation"`
}

// Correlate computes the correlation matrix over all seven columns. The
// matrix is symmetric with a unit diagonal by construction.
func Correlate(ds *dataset.Dataset) (*Correlation, error) {
	columns := dataset.Columns
	vectors := make([][]float64, len(columns))
	for i, name := range columns {
		col, err := ds.Column(name)
		if err != nil {
			return nil, apperrors.NewAnalysisError("correlation input", err)
		}
		vectors[i] = col
	}

	matrix := make([][]float64, len(columns))
	for i := range matrix {
		matrix[i] = make([]float64, len(columns))
		matrix[i][i] = 1
	}
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r := stat.Correlation(vectors[i], vectors[j], nil)
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	corr := &Correlation{
		Columns: columns,
		Matrix:  matrix,
	}

	chargesIdx := len(columns) - 1
	for i, name := range columns {
		if i == chargesIdx {
			continue
		}
		corr.ChargesRanking = append(corr.ChargesRanking, CorrelationEntry{
			Column: name,
			R:      matrix[i][chargesIdx],
		})
	}
	sort.SliceStable(corr.ChargesRanking, func(a, b int) bool {
		return math.Abs(corr.ChargesRanking[a].R) > math.Abs(corr.ChargesRanking[b].R)
	})

	top := corr.ChargesRanking[0]
	corr.StrongestPredictor = top.Column
	corr.StrongestR = top.R
	corr.Interpretation = InterpretCorrelation(top.R)

	return corr, nil
}

// R returns the correlation between two named columns.
func (c *Correlation) R(a, b string) (float64, bool) {
	ai, bi := -1, -1
	for i, name := range c.Columns {
		if name == a {
			ai = i
		}
		if name == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0, false
	}
	return c.Matrix[ai][bi], true
}

// InterpretCorrelation maps an r value to a strength description.
func InterpretCorrelation(r float64) string {
	switch abs := math.Abs(r); {
	case abs >= 0.7:
		return "Strong"
	case abs >= 0.5:
		return "Moderate"
	case abs >= 0.3:
		return "Weak"
	default:
		return "Very weak"
	}
}
