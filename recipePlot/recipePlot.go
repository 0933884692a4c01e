//Package recipePlot renders PNG previews of generated tables so the datasets
//can be eyeballed without the downstream plotting library
package recipePlot

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"datasmith/table"
)

//groupPalette is cycled over when a plot is split by group column
var groupPalette = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkorange,
	colornames.Seagreen,
	colornames.Firebrick,
	colornames.Mediumpurple,
}

//floatColumn parses the named column of t as float64 values
func floatColumn(t *table.Table, name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(t.Rows))
	for i := range t.Rows {
		values[i], err = strconv.ParseFloat(t.Rows[i][col], 64)
		if err != nil {
			return nil, fmt.Errorf("row %v of %v : failed to parse %v as float : %w", i, t.Name, t.Rows[i][col], err)
		}
	}
	return values, nil
}

//groupOrder returns the distinct values of the group column in first
//occurrence order
func groupOrder(t *table.Table, col int) []string {
	seen := make(map[string]bool)
	order := make([]string, 0)
	for i := range t.Rows {
		g := t.Rows[i][col]
		if !seen[g] {
			seen[g] = true
			order = append(order, g)
		}
	}
	return order
}

//groupedXYs splits the x/y columns of t by the group column
func groupedXYs(t *table.Table, xCol, yCol, groupCol string) ([]string, map[string]plotter.XYs, error) {
	xs, err := floatColumn(t, xCol)
	if err != nil {
		return nil, nil, err
	}
	ys, err := floatColumn(t, yCol)
	if err != nil {
		return nil, nil, err
	}
	gc, err := t.Column(groupCol)
	if err != nil {
		return nil, nil, err
	}
	byGroup := make(map[string]plotter.XYs)
	for i := range t.Rows {
		g := t.Rows[i][gc]
		byGroup[g] = append(byGroup[g], plotter.XY{X: xs[i], Y: ys[i]})
	}
	return groupOrder(t, gc), byGroup, nil
}

//Scatter creates a scatter plot of xCol vs yCol, one color per group
func Scatter(t *table.Table, xCol, yCol, groupCol string) (*plot.Plot, error) {
	order, byGroup, err := groupedXYs(t, xCol, yCol, groupCol)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = t.Name
	p.X.Label.Text = xCol
	p.Y.Label.Text = yCol
	for i, g := range order {
		sc, err := plotter.NewScatter(byGroup[g])
		if err != nil {
			return nil, fmt.Errorf("failed creating scatter for group %v : %w", g, err)
		}
		sc.GlyphStyle.Color = groupPalette[i%len(groupPalette)]
		p.Add(sc)
		p.Legend.Add(g, sc)
	}
	p.Legend.Top = true
	return p, nil
}

//Histogram creates a histogram of the named column with bins buckets
func Histogram(t *table.Table, col string, bins int) (*plot.Plot, error) {
	values, err := floatColumn(t, col)
	if err != nil {
		return nil, err
	}
	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, fmt.Errorf("failed creating histogram : %w", err)
	}

	p := plot.New()
	p.Title.Text = t.Name
	p.X.Label.Text = col
	p.Y.Label.Text = "count"
	p.Add(hist)
	return p, nil
}

//Lines creates one line per group of xCol vs yCol
func Lines(t *table.Table, xCol, yCol, groupCol string) (*plot.Plot, error) {
	order, byGroup, err := groupedXYs(t, xCol, yCol, groupCol)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = t.Name
	p.X.Label.Text = xCol
	p.Y.Label.Text = yCol
	for i, g := range order {
		line, err := plotter.NewLine(byGroup[g])
		if err != nil {
			return nil, fmt.Errorf("failed creating line for group %v : %w", g, err)
		}
		line.Color = groupPalette[i%len(groupPalette)]
		p.Add(line)
		p.Legend.Add(g, line)
	}
	p.Legend.Top = true
	return p, nil
}

//WritePNG renders p as a 800x600 PNG into out
func WritePNG(p *plot.Plot, out io.Writer) error {
	writerTo, err := p.WriterTo(800, 600, "png")
	if err != nil {
		return fmt.Errorf("failed to prepare plot for writing : %w", err)
	}
	if _, err := writerTo.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write plot : %w", err)
	}
	return nil
}
