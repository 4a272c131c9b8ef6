// Package chart renders the fixed set of PNG charts for the insurance
// analysis: line, bar, histogram, scatter, correlation heatmap and box
// plots.
package chart

import (
	"context"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
	apperrors "medinsight/internal/errors"
)

// Output file names, matching the fixed set the pipeline promises.
const (
	LineChartFile   = "line_chart_age_vs_charges.png"
	BarChartFile    = "bar_chart_region_charges.png"
	HistogramFile   = "histogram_bmi_distribution.png"
	ScatterFile     = "scatter_plot_bmi_vs_charges.png"
	HeatmapFile     = "correlation_heatmap.png"
	BoxPlotsFile    = "box_plots_categorical.png"
)

var (
	colorBlue   = color.RGBA{R: 69, G: 183, B: 209, A: 255}
	colorRed    = color.RGBA{R: 255, G: 107, B: 107, A: 255}
	colorGreen  = color.RGBA{R: 150, G: 206, B: 180, A: 255}
	colorOrange = color.RGBA{R: 247, G: 179, B: 43, A: 255}
	colorGray   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// Renderer writes the chart set into an output directory.
type Renderer struct {
	logger *slog.Logger
	outDir string
	bins   int
}

// NewRenderer creates a Renderer. A nil logger falls back to slog.Default;
// a non-positive bin count falls back to 30.
func NewRenderer(logger *slog.Logger, outDir string, bins int) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if bins <= 0 {
		bins = 30
	}
	return &Renderer{logger: logger, outDir: outDir, bins: bins}
}

// RenderAll renders the six charts and returns the written file paths.
func (r *Renderer) RenderAll(ctx context.Context, ds *dataset.Dataset, report *analysis.Report) ([]string, error) {
	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return nil, apperrors.NewStorageError("create chart output directory", err)
	}

	steps := []struct {
		name   string
		file   string
		render func(*dataset.Dataset, *analysis.Report, string) error
	}{
		{"line chart", LineChartFile, r.renderAgeChargesLine},
		{"bar chart", BarChartFile, r.renderRegionBar},
		{"histogram", HistogramFile, r.renderBMIHistogram},
		{"scatter plot", ScatterFile, r.renderBMIScatter},
		{"correlation heatmap", HeatmapFile, r.renderHeatmap},
		{"box plots", BoxPlotsFile, r.renderBoxPlots},
	}

	paths := make([]string, 0, len(steps))
	for _, step := range steps {
		path := filepath.Join(r.outDir, step.file)
		r.logger.InfoContext(ctx, "rendering chart",
			slog.String("chart", step.name),
			slog.String("path", path))

		if err := step.render(ds, report, path); err != nil {
			return nil, apperrors.NewRenderError("render "+step.name, err).WithContext("path", path)
		}
		paths = append(paths, path)
	}

	r.logger.InfoContext(ctx, "all charts rendered", slog.Int("count", len(paths)))
	return paths, nil
}

// usd formats chart currency labels with thousands separators.
var usd = message.NewPrinter(language.English)

func formatUSD(v float64) string {
	return usd.Sprintf("$%.0f", v)
}

// currencyTicks renders default axis ticks as dollar amounts.
type currencyTicks struct{}

func (currencyTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = formatUSD(t.Value)
	}
	return ticks
}
