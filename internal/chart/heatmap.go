package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Row 0 of the
// matrix is drawn at the top of the heat map, matching the usual
// reading order of a correlation table.
type corrGrid struct {
	matrix [][]float64
}

func (g corrGrid) Dims() (int, int) { return len(g.matrix), len(g.matrix) }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }

func (g corrGrid) Z(c, r int) float64 {
	// Flip rows so the first column appears in the top row.
	return g.matrix[len(g.matrix)-1-r][c]
}

func (r *Renderer) renderHeatmap(_ *dataset.Dataset, report *analysis.Report, path string) error {
	n := len(report.Correlation.Columns)
	if n == 0 {
		return fmt.Errorf("correlation matrix is empty")
	}

	grid := corrGrid{matrix: report.Correlation.Matrix}
	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min, hm.Max = -1, 1

	p := plot.New()
	p.Title.Text = "Correlation Matrix"
	p.Add(hm)

	xticks := make([]plot.Tick, n)
	yticks := make([]plot.Tick, n)
	for i, name := range report.Correlation.Columns {
		xticks[i] = plot.Tick{Value: float64(i), Label: name}
		yticks[i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.YAlign = -0.6
	p.X.Tick.Label.XAlign = -0.9

	// Annotate each cell with its coefficient.
	labels := plotter.XYLabels{}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := report.Correlation.Matrix[row][col]
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(col), Y: float64(n - 1 - row)})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.2f", v))
		}
	}
	cellLabels, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	for i := range cellLabels.TextStyle {
		cellLabels.TextStyle[i].XAlign = -0.5
		cellLabels.TextStyle[i].YAlign = -0.5
		cellLabels.TextStyle[i].Color = color.Gray{Y: 32}
		cellLabels.TextStyle[i].Font.Size = vg.Points(8)
	}
	p.Add(cellLabels)

	return p.Save(7*vg.Inch, 6*vg.Inch, path)
}
