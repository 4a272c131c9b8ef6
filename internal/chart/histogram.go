package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
)

// renderBMIHistogram plots the BMI distribution with mean and median
// reference lines.
func (r *Renderer) renderBMIHistogram(ds *dataset.Dataset, report *analysis.Report, path string) error {
	bmi, err := ds.Column(dataset.ColBMI)
	if err != nil {
		return err
	}
	stats := report.Descriptive[dataset.ColBMI]

	p := plot.New()
	p.Title.Text = "Distribution of BMI"
	p.X.Label.Text = "BMI"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(bmi), r.bins)
	if err != nil {
		return err
	}
	hist.FillColor = colorBlue
	hist.LineStyle.Color = colorGray
	hist.LineStyle.Width = vg.Points(0.5)
	p.Add(hist)

	// Vertical reference lines spanning the histogram's height.
	_, _, _, ymax := hist.DataRange()
	mean, err := verticalLine(stats.Mean, ymax, colorRed)
	if err != nil {
		return err
	}
	median, err := verticalLine(stats.Median, ymax, colorOrange)
	if err != nil {
		return err
	}
	p.Add(mean, median)
	p.Legend.Add(fmt.Sprintf("mean %.2f", stats.Mean), mean)
	p.Legend.Add(fmt.Sprintf("median %.2f", stats.Median), median)
	p.Legend.Top = true

	return p.Save(7*vg.Inch, 4*vg.Inch, path)
}

func verticalLine(x, ymax float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: ymax}})
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(2)
	line.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	return line, nil
}
