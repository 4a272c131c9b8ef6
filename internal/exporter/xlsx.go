package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
	apperrors "medinsight/internal/errors"
)

// WriteWorkbook exports the full report as a multi-sheet XLSX workbook.
func (e *Exporter) WriteWorkbook(report *analysis.Report) (string, error) {
	path := filepath.Join(e.outDir, WorkbookFile)
	e.logger.Info("writing workbook", slog.String("path", path))

	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return "", apperrors.NewStorageError("create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeDescriptiveSheet(f, report); err != nil {
		return "", apperrors.NewStorageError("write descriptive sheet", err)
	}
	if err := writeCorrelationSheet(f, report); err != nil {
		return "", apperrors.NewStorageError("write correlation sheet", err)
	}
	if err := writeGroupsSheet(f, report); err != nil {
		return "", apperrors.NewStorageError("write groups sheet", err)
	}
	if err := writeTestsSheet(f, report); err != nil {
		return "", apperrors.NewStorageError("write tests sheet", err)
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return "", apperrors.NewStorageError("save workbook", err).WithContext("path", path)
	}
	return path, nil
}

func writeDescriptiveSheet(f *excelize.File, report *analysis.Report) error {
	const sheet = "Descriptive"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	header := []interface{}{"column", "count", "mean", "median", "mode", "std", "variance", "min", "max", "q1", "q3", "skewness", "kurtosis"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	row := 2
	for _, col := range dataset.Columns {
		stats, ok := report.Descriptive[col]
		if !ok {
			continue
		}
		err := setRow(f, sheet, row, []interface{}{
			col, stats.Count, stats.Mean, stats.Median, stats.Mode, stats.Std,
			stats.Variance, stats.Min, stats.Max, stats.Q1, stats.Q3,
			stats.Skewness, stats.Kurtosis,
		})
		if err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeCorrelationSheet(f *excelize.File, report *analysis.Report) error {
	const sheet = "Correlation"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := make([]interface{}, 0, len(report.Correlation.Columns)+1)
	header = append(header, "")
	for _, col := range report.Correlation.Columns {
		header = append(header, col)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, col := range report.Correlation.Columns {
		row := make([]interface{}, 0, len(report.Correlation.Columns)+1)
		row = append(row, col)
		for _, r := range report.Correlation.Matrix[i] {
			row = append(row, r)
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeGroupsSheet(f *excelize.File, report *analysis.Report) error {
	const sheet = "Groups"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, []interface{}{"column", "group", "count", "mean", "median", "std", "min", "max"}); err != nil {
		return err
	}
	row := 2
	for _, col := range dataset.CategoricalColumns {
		for _, g := range report.Groups[col] {
			err := setRow(f, sheet, row, []interface{}{
				col, g.Group, g.Count, g.Mean, g.Median, g.Std, g.Min, g.Max,
			})
			if err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeTestsSheet(f *excelize.File, report *analysis.Report) error {
	const sheet = "Tests"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, []interface{}{"test", "statistic", "p_value", "df", "significant"}); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"smoker t-test", report.Tests.SmokerTTest.T, report.Tests.SmokerTTest.P,
			report.Tests.SmokerTTest.DF, report.Tests.SmokerTTest.Significant},
		{"sex t-test", report.Tests.SexTTest.T, report.Tests.SexTTest.P,
			report.Tests.SexTTest.DF, report.Tests.SexTTest.Significant},
		{"region ANOVA", report.Tests.RegionANOVA.F, report.Tests.RegionANOVA.P,
			fmt.Sprintf("%d, %d", report.Tests.RegionANOVA.DFBetween, report.Tests.RegionANOVA.DFWithin),
			report.Tests.RegionANOVA.Significant},
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
