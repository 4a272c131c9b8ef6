package chart

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
)

// renderAgeChargesLine plots the mean charges per age with a least-squares
// trend line.
func (r *Renderer) renderAgeChargesLine(ds *dataset.Dataset, _ *analysis.Report, path string) error {
	age, err := ds.Column(dataset.ColAge)
	if err != nil {
		return err
	}
	charges, err := ds.Column(dataset.ColCharges)
	if err != nil {
		return err
	}

	// Mean charges per distinct age, in ascending age order.
	byAge := make(map[float64][]float64)
	for i, a := range age {
		byAge[a] = append(byAge[a], charges[i])
	}
	ages := make([]float64, 0, len(byAge))
	for a := range byAge {
		ages = append(ages, a)
	}
	sort.Float64s(ages)

	pts := make(plotter.XYs, len(ages))
	xs := make([]float64, len(ages))
	ys := make([]float64, len(ages))
	for i, a := range ages {
		mean := stat.Mean(byAge[a], nil)
		pts[i] = plotter.XY{X: a, Y: mean}
		xs[i], ys[i] = a, mean
	}

	p := plot.New()
	p.Title.Text = "Charges Trend by Age"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Average Charges"
	p.Y.Tick.Marker = currencyTicks{}
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = colorBlue
	line.Width = vg.Points(2)
	points.Shape = draw.CircleGlyph{}
	points.Color = colorBlue
	points.Radius = vg.Points(2)
	p.Add(line, points)
	p.Legend.Add("mean charges", line)

	// Least-squares trend over the per-age means.
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	trendPts := plotter.XYs{
		{X: xs[0], Y: intercept + slope*xs[0]},
		{X: xs[len(xs)-1], Y: intercept + slope*xs[len(xs)-1]},
	}
	trend, err := plotter.NewLine(trendPts)
	if err != nil {
		return err
	}
	trend.Color = colorRed
	trend.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(trend)
	p.Legend.Add(fmt.Sprintf("trend (%s per year)", formatUSD(slope)), trend)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
