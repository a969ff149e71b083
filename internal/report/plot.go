package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/GriffinCanCode/batchplot/internal/config"
	"github.com/GriffinCanCode/batchplot/internal/dataset"
)

// circlePoints is the number of vertices of the unit-circle polyline. The
// first and last vertex coincide to close the curve.
const circlePoints = 151

// RenderPlot renders one scatter series per batch together with the unit
// circle and writes the image to <basePath>.<format>. All records are
// plotted, filtered or not; each point is annotated with its value. The
// written filename is returned.
//
// Axis ranges are squared and the canvas is square, so the data aspect
// ratio is 1:1 and the circle renders circular.
func RenderPlot(group *dataset.BatchGroup, basePath string, cfg config.PlotConfig) (string, error) {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	circle, err := plotter.NewLine(unitCircle())
	if err != nil {
		return "", fmt.Errorf("build unit circle: %w", err)
	}
	p.Add(circle)

	lo, hi := -1.0, 1.0
	for i, batch := range group.Batches() {
		records := group.Records(batch)

		xys := make(plotter.XYs, len(records))
		labels := make([]string, len(records))
		for j, r := range records {
			xys[j] = plotter.XY{X: r.X, Y: r.Y}
			labels[j] = fmt.Sprintf(cfg.LabelFormat, r.Value)
			lo = math.Min(lo, math.Min(r.X, r.Y))
			hi = math.Max(hi, math.Max(r.X, r.Y))
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return "", fmt.Errorf("build scatter for batch %s: %w", batch, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		p.Add(scatter)
		p.Legend.Add(batch, scatter)

		annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return "", fmt.Errorf("build labels for batch %s: %w", batch, err)
		}
		p.Add(annotations)
	}

	pad := 0.05 * (hi - lo)
	p.X.Min, p.X.Max = lo-pad, hi+pad
	p.Y.Min, p.Y.Max = lo-pad, hi+pad

	out := fmt.Sprintf("%s.%s", basePath, cfg.Format)
	side := vg.Length(cfg.SideInches) * vg.Inch
	if err := p.Save(side, side, out); err != nil {
		return "", fmt.Errorf("save plot: %w", err)
	}
	return out, nil
}

// unitCircle returns the circle x²+y²=1 as evenly spaced vertices.
func unitCircle() plotter.XYs {
	xys := make(plotter.XYs, circlePoints)
	for i := range xys {
		theta := 2 * math.Pi * float64(i) / float64(circlePoints-1)
		xys[i] = plotter.XY{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return xys
}
