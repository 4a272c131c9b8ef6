package chart

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
)

// renderRegionBar plots the average charges per region, highest first, with
// a value label above each bar.
func (r *Renderer) renderRegionBar(ds *dataset.Dataset, report *analysis.Report, path string) error {
	groups := report.Groups[dataset.ColRegion]
	if len(groups) == 0 {
		var err error
		groups, err = analysis.GroupCharges(ds, dataset.ColRegion)
		if err != nil {
			return err
		}
	}

	sorted := make([]analysis.GroupStat, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Mean > sorted[j].Mean })

	values := make(plotter.Values, len(sorted))
	names := make([]string, len(sorted))
	labels := make([]string, len(sorted))
	labelPts := make(plotter.XYs, len(sorted))
	for i, g := range sorted {
		values[i] = g.Mean
		names[i] = g.Group
		labels[i] = formatUSD(g.Mean)
		labelPts[i] = plotter.XY{X: float64(i), Y: g.Mean}
	}

	p := plot.New()
	p.Title.Text = "Average Charges by Region"
	p.X.Label.Text = "Region"
	p.Y.Label.Text = "Average Charges"
	p.Y.Tick.Marker = currencyTicks{}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = colorBlue
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelPts, Labels: labels})
	if err != nil {
		return err
	}
	valueLabels.Offset = vg.Point{Y: vg.Points(3)}
	p.Add(valueLabels)

	return p.Save(7*vg.Inch, 4*vg.Inch, path)
}
