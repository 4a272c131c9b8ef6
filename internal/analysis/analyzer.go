package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"medinsight/internal/dataset"
	apperrors "medinsight/internal/errors"
)

// Analyzer runs the full statistics stage over a cleaned dataset.
type Analyzer struct {
	logger *slog.Logger
	alpha  float64
}

// New creates an Analyzer. A nil logger falls back to slog.Default; a
// non-positive alpha falls back to 0.05.
func New(logger *slog.Logger, alpha float64) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if alpha <= 0 || alpha >= 1 {
		alpha = 0.05
	}
	return &Analyzer{logger: logger, alpha: alpha}
}

// Run computes descriptive statistics, the correlation matrix, group
// aggregates, hypothesis tests and derived insights.
func (a *Analyzer) Run(ctx context.Context, ds *dataset.Dataset) (*Report, error) {
	a.logger.InfoContext(ctx, "starting statistical analysis",
		slog.Int("rows", ds.Rows()),
		slog.Float64("alpha", a.alpha))

	report := &Report{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Source:        ds.Source,
		Rows:          ds.Rows(),
		Alpha:         a.alpha,
		ImputedValues: ds.Imputed,
		Descriptive:   make(map[string]ColumnStats, len(dataset.Columns)),
		Groups:        make(map[string][]GroupStat, 4),
	}

	for _, name := range dataset.Columns {
		col, err := ds.Column(name)
		if err != nil {
			return nil, apperrors.NewAnalysisError("descriptive input", err)
		}
		report.Descriptive[name] = Describe(col)
	}

	corr, err := Correlate(ds)
	if err != nil {
		return nil, err
	}
	report.Correlation = corr
	a.logger.InfoContext(ctx, "correlation analysis complete",
		slog.String("strongest_predictor", corr.StrongestPredictor),
		slog.Float64("r", corr.StrongestR))

	for _, column := range []string{dataset.ColSmoker, dataset.ColSex, dataset.ColRegion, dataset.ColChildren} {
		groups, err := GroupCharges(ds, column)
		if err != nil {
			return nil, err
		}
		report.Groups[column] = groups
	}

	tests, err := a.runTests(ds)
	if err != nil {
		return nil, err
	}
	report.Tests = tests

	report.Insights = buildInsights(corr, report.Groups[dataset.ColSmoker], tests)

	a.logger.InfoContext(ctx, "statistical analysis complete",
		slog.String("run_id", report.RunID),
		slog.Any("significant_factors", report.Insights.SignificantFactors))

	return report, nil
}

// runTests performs the smoker and sex t-tests and the region ANOVA on
// charges.
func (a *Analyzer) runTests(ds *dataset.Dataset) (TestResults, error) {
	var tests TestResults

	charges, err := ds.Column(dataset.ColCharges)
	if err != nil {
		return tests, apperrors.NewAnalysisError("charges column", err)
	}

	smoker, err := ds.Column(dataset.ColSmoker)
	if err != nil {
		return tests, apperrors.NewAnalysisError("smoker column", err)
	}
	bySmoker := splitBy(charges, smoker)
	tests.SmokerTTest, err = TTestInd(bySmoker[1], bySmoker[0], a.alpha)
	if err != nil {
		return tests, err
	}

	sex, err := ds.Column(dataset.ColSex)
	if err != nil {
		return tests, apperrors.NewAnalysisError("sex column", err)
	}
	bySex := splitBy(charges, sex)
	tests.SexTTest, err = TTestInd(bySex[1], bySex[2], a.alpha)
	if err != nil {
		return tests, err
	}

	region, err := ds.Column(dataset.ColRegion)
	if err != nil {
		return tests, apperrors.NewAnalysisError("region column", err)
	}
	byRegion := splitBy(charges, region)
	regionGroups := make([][]float64, 0, len(byRegion))
	for code := 1; code <= 4; code++ {
		if g, ok := byRegion[code]; ok {
			regionGroups = append(regionGroups, g)
		}
	}
	tests.RegionANOVA, err = OneWayANOVA(a.alpha, regionGroups...)
	if err != nil {
		return tests, err
	}

	return tests, nil
}
