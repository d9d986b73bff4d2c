package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lvsim/internal/analysis"
	"github.com/san-kum/lvsim/internal/compare"
	"github.com/san-kum/lvsim/internal/lotka"
)

// PlotTrajectory draws P(t) and D(t) on one chart.
func PlotTrajectory(tr *lotka.Trajectory, width, height int) string {
	caption := fmt.Sprintf("%s, h=%g, t in [0, %g]", tr.Scheme, tr.H, tr.T[len(tr.T)-1])
	return asciigraph.PlotMany([][]float64{tr.P, tr.D},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.SeriesLegends("prey P", "predators D"),
	)
}

// PlotDiff draws |Euler - RK4| for both populations.
func PlotDiff(c *compare.Comparison, width, height int) string {
	return asciigraph.PlotMany([][]float64{c.DiffP, c.DiffD},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("|euler - rk4|, h=%g", c.Euler.H)),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.SeriesLegends("diff P", "diff D"),
	)
}

// PlotConvergence draws log10 of the final-state error per step size,
// coarsest first.
func PlotConvergence(rep *analysis.ConvergenceReport, width, height int) string {
	data := make([]float64, 0, len(rep.Points))
	for _, pt := range rep.Points {
		if pt.Err > 0 {
			data = append(data, math.Log10(pt.Err))
		}
	}
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("log10 error, %s, h halving left to right", rep.Scheme)),
	)
}

// PlotPhase draws orbits on a Braille canvas and marks the portrait's
// marker with a cross.
func PlotPhase(portrait *analysis.PhasePortrait, width, height int) string {
	series := portrait.Series
	if portrait.Marker != nil {
		series = append(series[:len(series):len(series)], []analysis.Point{*portrait.Marker})
	}
	b := FitBounds(series...)

	c := NewCanvas(width, height)
	for _, s := range portrait.Series {
		c.DrawPolyline(s, b)
	}
	if m := portrait.Marker; m != nil {
		x, y := c.project(*m, b)
		c.DrawLine(x-2, y, x+2, y)
		c.DrawLine(x, y-2, x, y+2)
	}
	return c.String()
}
