package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
)

// renderBMIScatter plots BMI against charges, colored by smoking status,
// with an overall least-squares trend line annotated with Pearson's r.
func (r *Renderer) renderBMIScatter(ds *dataset.Dataset, report *analysis.Report, path string) error {
	bmi, err := ds.Column(dataset.ColBMI)
	if err != nil {
		return err
	}
	charges, err := ds.Column(dataset.ColCharges)
	if err != nil {
		return err
	}
	smoker, err := ds.Column(dataset.ColSmoker)
	if err != nil {
		return err
	}

	var smokers, nonSmokers plotter.XYs
	for i := range bmi {
		pt := plotter.XY{X: bmi[i], Y: charges[i]}
		if smoker[i] == 1 {
			smokers = append(smokers, pt)
		} else {
			nonSmokers = append(nonSmokers, pt)
		}
	}

	p := plot.New()
	p.Title.Text = "BMI vs Charges"
	p.X.Label.Text = "BMI"
	p.Y.Label.Text = "Charges"
	p.Y.Tick.Marker = currencyTicks{}
	p.Add(plotter.NewGrid())

	for _, group := range []struct {
		pts   plotter.XYs
		name  string
		color color.Color
	}{
		{nonSmokers, fmt.Sprintf("non-smoker (n=%d)", len(nonSmokers)), colorBlue},
		{smokers, fmt.Sprintf("smoker (n=%d)", len(smokers)), colorRed},
	} {
		if len(group.pts) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(group.pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Shape:  draw.CircleGlyph{},
			Color:  group.color,
			Radius: vg.Points(2),
		}
		p.Add(scatter)
		p.Legend.Add(group.name, scatter)
	}

	// Overall trend across both groups.
	intercept, slope := stat.LinearRegression(bmi, charges, nil, false)
	xmin, xmax := bmi[0], bmi[0]
	for _, v := range bmi {
		if v < xmin {
			xmin = v
		}
		if v > xmax {
			xmax = v
		}
	}
	trend, err := plotter.NewLine(plotter.XYs{
		{X: xmin, Y: intercept + slope*xmin},
		{X: xmax, Y: intercept + slope*xmax},
	})
	if err != nil {
		return err
	}
	trend.Color = colorGreen
	trend.Width = vg.Points(1.5)
	trend.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(trend)

	rValue, _ := report.Correlation.R(dataset.ColBMI, dataset.ColCharges)
	p.Legend.Add(fmt.Sprintf("trend (r=%.3f)", rValue), trend)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
