package chart

import (
	"os"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
)

// renderBoxPlots draws charges distributions split by each categorical
// column in a 2x2 grid and writes the combined image as a single PNG.
func (r *Renderer) renderBoxPlots(ds *dataset.Dataset, _ *analysis.Report, path string) error {
	charges, err := ds.Column(dataset.ColCharges)
	if err != nil {
		return err
	}

	plots := make([]*plot.Plot, 0, len(dataset.CategoricalColumns))
	for _, col := range dataset.CategoricalColumns {
		keys, err := ds.Column(col)
		if err != nil {
			return err
		}
		p, err := boxPlotByGroup(col, keys, charges)
		if err != nil {
			return err
		}
		plots = append(plots, p)
	}

	const rows, cols = 2, 2
	img := vgimg.New(10*vg.Inch, 8*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Points(8),
		PadY:      vg.Points(8),
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
	}

	canvases := plot.Align([][]*plot.Plot{
		{plots[0], plots[1]},
		{plots[2], plots[3]},
	}, tiles, dc)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			plots[row*cols+col].Draw(canvases[row][col])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(f)
	return err
}

// boxPlotByGroup builds one box plot of charges per distinct code of a
// categorical column, ordered by code.
func boxPlotByGroup(column string, keys, charges []float64) (*plot.Plot, error) {
	grouped := make(map[int]plotter.Values)
	for i, k := range keys {
		code := int(k)
		grouped[code] = append(grouped[code], charges[i])
	}
	codes := make([]int, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	p := plot.New()
	p.Title.Text = "Charges by " + column
	p.Y.Label.Text = "Charges"
	p.Y.Tick.Marker = currencyTicks{}

	names := make([]string, 0, len(codes))
	for i, code := range codes {
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), grouped[code])
		if err != nil {
			return nil, err
		}
		box.FillColor = colorBlue
		p.Add(box)

		name, ok := dataset.LabelFor(column, code)
		if !ok {
			name = strconv.Itoa(code)
		}
		names = append(names, name)
	}
	p.NominalX(names...)
	return p, nil
}
