package analysis

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	apperrors "medinsight/internal/errors"
)

// TestResults aggregates the hypothesis tests the pipeline runs.
type TestResults struct {
	SmokerTTest TTestResult `json:"smoker_ttest"`
	SexTTest    TTestResult `json:"sex_ttest"`
	RegionANOVA AnovaResult `json:"region_anova"`
}

// Report is the complete statistics output of one pipeline run.
type Report struct {
	RunID         string                 `json:"run_id"`
	GeneratedAt   time.Time              `json:"generated_at"`
	Source        string                 `json:"source"`
	Rows          int                    `json:"rows"`
	Alpha         float64                `json:"alpha"`
	ImputedValues map[string]int         `json:"imputed_values"`
	Descriptive   map[string]ColumnStats `json:"descriptive"`
	Correlation   *Correlation           `json:"correlation"`
	Groups        map[string][]GroupStat `json:"groups"`
	Tests         TestResults            `json:"statistical_tests"`
	Insights      Insights               `json:"insights"`
}

// WriteJSON writes the report to path as indented JSON.
func (r *Report) WriteJSON(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("create report directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("create report file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return apperrors.NewStorageError("encode report json", err)
	}
	return nil
}
