package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/lvsim/internal/analysis"
	"github.com/san-kum/lvsim/internal/lotka"
)

// Series is one polyline of an SVG plot.
type Series struct {
	Name   string
	Color  string
	Points []analysis.Point
}

var palette = []string{"#4ec9b0", "#f14c4c", "#dcdcaa", "#569cd6", "#c586c0"}

// TimeSeries returns the P(t) and D(t) curves of a trajectory.
func TimeSeries(tr *lotka.Trajectory) []Series {
	prey := Series{Name: "P", Color: palette[0], Points: make([]analysis.Point, tr.Len())}
	pred := Series{Name: "D", Color: palette[1], Points: make([]analysis.Point, tr.Len())}
	for k := range tr.T {
		prey.Points[k] = analysis.Point{X: tr.T[k], Y: tr.P[k]}
		pred.Points[k] = analysis.Point{X: tr.T[k], Y: tr.D[k]}
	}
	return []Series{prey, pred}
}

// PhaseSeries turns each orbit of a portrait into a series.
func PhaseSeries(portrait *analysis.PhasePortrait) []Series {
	out := make([]Series, len(portrait.Series))
	for i, pts := range portrait.Series {
		out[i] = Series{
			Name:   fmt.Sprintf("orbit %d", i+1),
			Color:  palette[i%len(palette)],
			Points: pts,
		}
	}
	return out
}

// WriteSVG draws the series as polylines on a shared, padded scale. A
// non-nil marker is drawn as a circle.
func WriteSVG(w io.Writer, series []Series, marker *analysis.Point, width, height int) error {
	first := true
	var minX, maxX, minY, maxY float64
	extend := func(p analysis.Point) {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			return
		}
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	for _, s := range series {
		for _, p := range s.Points {
			extend(p)
		}
	}
	if first {
		return fmt.Errorf("export: nothing to plot")
	}
	if marker != nil {
		extend(*marker)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	minY -= rangeY * 0.05
	rangeX *= 1.1
	rangeY *= 1.1

	project := func(p analysis.Point) (float64, float64) {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		fmt.Fprintf(bw, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, s.Color)
		for i, p := range s.Points {
			x, y := project(p)
			if i == 0 {
				fmt.Fprintf(bw, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(bw, " L%.1f,%.1f", x, y)
			}
		}
		fmt.Fprintf(bw, "\"><title>%s</title></path>\n", s.Name)
	}

	if marker != nil {
		x, y := project(*marker)
		fmt.Fprintf(bw, `<circle cx="%.1f" cy="%.1f" r="3" fill="#ffffff"/>
`, x, y)
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}
