package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
	apperrors "medinsight/internal/errors"
)

var usd = message.NewPrinter(language.English)

// WriteSummary renders the report as a plain-text digest and writes it
// next to the other output files.
func (e *Exporter) WriteSummary(report *analysis.Report) (string, error) {
	path := filepath.Join(e.outDir, SummaryFile)
	e.logger.Info("writing summary", slog.String("path", path))

	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return "", apperrors.NewStorageError("create output directory", err)
	}
	if err := os.WriteFile(path, []byte(formatSummary(report)), 0644); err != nil {
		return "", apperrors.NewStorageError("write summary", err).WithContext("path", path)
	}
	return path, nil
}

func formatSummary(report *analysis.Report) string {
	var b strings.Builder

	rule := strings.Repeat("=", 64)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "MEDICAL INSURANCE COST ANALYSIS")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Run ID:       %s\n", report.RunID)
	fmt.Fprintf(&b, "Generated:    %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Source:       %s\n", report.Source)
	fmt.Fprintf(&b, "Rows:         %d\n", report.Rows)
	if n := totalImputed(report.ImputedValues); n > 0 {
		fmt.Fprintf(&b, "Imputed:      %d value(s) across %d column(s)\n", n, len(report.ImputedValues))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DESCRIPTIVE STATISTICS")
	fmt.Fprintln(&b, strings.Repeat("-", 64))
	for _, col := range dataset.Columns {
		stats, ok := report.Descriptive[col]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%-10s mean=%.2f  median=%.2f  std=%.2f  min=%.2f  max=%.2f\n",
			col, stats.Mean, stats.Median, stats.Std, stats.Min, stats.Max)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "CORRELATION WITH CHARGES")
	fmt.Fprintln(&b, strings.Repeat("-", 64))
	for _, entry := range report.Correlation.ChargesRanking {
		fmt.Fprintf(&b, "%-10s r=%+.4f  (%s)\n",
			entry.Column, entry.R, analysis.InterpretCorrelation(entry.R))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "AVERAGE CHARGES BY GROUP")
	fmt.Fprintln(&b, strings.Repeat("-", 64))
	for _, col := range dataset.CategoricalColumns {
		groups, ok := report.Groups[col]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", col)
		for _, g := range groups {
			fmt.Fprintf(&b, "  %-12s n=%-5d mean=%s  median=%s\n",
				g.Group, g.Count, usd.Sprintf("$%.2f", g.Mean), usd.Sprintf("$%.2f", g.Median))
		}
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "STATISTICAL TESTS")
	fmt.Fprintln(&b, strings.Repeat("-", 64))
	fmt.Fprintf(&b, "Smoker vs non-smoker charges (t-test):  t=%.4f  p=%.6f  %s\n",
		report.Tests.SmokerTTest.T, report.Tests.SmokerTTest.P,
		verdict(report.Tests.SmokerTTest.Significant))
	fmt.Fprintf(&b, "Male vs female charges (t-test):        t=%.4f  p=%.6f  %s\n",
		report.Tests.SexTTest.T, report.Tests.SexTTest.P,
		verdict(report.Tests.SexTTest.Significant))
	fmt.Fprintf(&b, "Charges across regions (ANOVA):         F=%.4f  p=%.6f  %s\n",
		report.Tests.RegionANOVA.F, report.Tests.RegionANOVA.P,
		verdict(report.Tests.RegionANOVA.Significant))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "KEY INSIGHTS")
	fmt.Fprintln(&b, strings.Repeat("-", 64))
	fmt.Fprintf(&b, "Strongest charges predictor: %s (r=%.4f, %s)\n",
		report.Insights.StrongestPredictor,
		report.Insights.CorrelationValue,
		report.Insights.Interpretation)
	if s := report.Insights.Smoking; s != nil {
		fmt.Fprintf(&b, "Smokers pay %.1fx more on average (%s more than %s, %s)\n",
			s.Multiplier, s.HighGroup, s.LowGroup,
			usd.Sprintf("$%.2f", s.Difference))
	}
	if len(report.Insights.SignificantFactors) > 0 {
		fmt.Fprintf(&b, "Significant factors at alpha=%.2f: %s\n",
			report.Alpha, strings.Join(report.Insights.SignificantFactors, ", "))
	} else {
		fmt.Fprintf(&b, "No factor reached significance at alpha=%.2f\n", report.Alpha)
	}

	return b.String()
}

func verdict(significant bool) string {
	if significant {
		return "significant"
	}
	return "not significant"
}

func totalImputed(counts map[string]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
