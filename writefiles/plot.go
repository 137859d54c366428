package writefiles

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/notargets/lidcavity/ghia_benchmark"
	"github.com/notargets/lidcavity/model_problems/LidCavity"
)

const (
	CenterlineUPlot = "centerline_u.png"
	CenterlineVPlot = "centerline_v.png"
)

func xys(x, y []float64) (pts plotter.XYs) {
	pts = make(plotter.XYs, len(x))
	for n := range x {
		pts[n].X, pts[n].Y = x[n], y[n]
	}
	return
}

func linePlot(title, xLabel, yLabel string, x, y []float64, refX, refY []float64) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	var line *plotter.Line
	if line, err = plotter.NewLine(xys(x, y)); err != nil {
		return
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)
	p.Legend.Add("computed", line)
	if refX != nil {
		var sc *plotter.Scatter
		if sc, err = plotter.NewScatter(xys(refX, refY)); err != nil {
			return
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		p.Add(sc)
		p.Legend.Add("Ghia et al. 1982", sc)
	}
	return
}

// PlotCenterlines saves u(y) on the vertical centerline and v(x) on the
// horizontal one as PNG files, with the Ghia data overlaid when Re is tabulated.
func PlotCenterlines(dir string, g *LidCavity.Collocated, Re float64) (err error) {
	var (
		p            *plot.Plot
		ref, haveRef = ghia_benchmark.Lookup(Re)
		refY, refU   []float64
		refX, refV   []float64
	)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return
	}
	if haveRef {
		refY, refU, refX, refV = ref.Y, ref.U, ref.X, ref.V
	}
	y, u := g.CenterlineU()
	if p, err = linePlot(fmt.Sprintf("u at x = 0.5, Re = %g", Re), "y", "u", y, u, refY, refU); err != nil {
		return
	}
	if err = p.Save(4*vg.Inch, 4*vg.Inch, filepath.Join(dir, CenterlineUPlot)); err != nil {
		return
	}
	x, v := g.CenterlineV()
	if p, err = linePlot(fmt.Sprintf("v at y = 0.5, Re = %g", Re), "x", "v", x, v, refX, refV); err != nil {
		return
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, filepath.Join(dir, CenterlineVPlot))
}
