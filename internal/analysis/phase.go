package analysis

import (
	"strings"

	"github.com/san-kum/lvsim/internal/lotka"
)

type Point struct {
	X, Y float64
}

// PhasePortrait holds one or more orbits in the (P, D) plane and an
// optional point to mark.
type PhasePortrait struct {
	Series [][]Point
	Marker *Point
}

var seriesGlyphs = []rune{'•', 'o', '+', 'x', '∙'}

// NewPhasePortrait collects the (P, D) samples of each trajectory. If the
// parameters admit a coexistence equilibrium it becomes the marker.
func NewPhasePortrait(prm lotka.Params, trs ...*lotka.Trajectory) *PhasePortrait {
	portrait := &PhasePortrait{Series: make([][]Point, 0, len(trs))}
	for _, tr := range trs {
		pts := make([]Point, tr.Len())
		for k := range pts {
			pts[k] = Point{X: tr.P[k], Y: tr.D[k]}
		}
		portrait.Series = append(portrait.Series, pts)
	}
	if p, d, err := prm.Equilibrium(); err == nil {
		portrait.Marker = &Point{X: p, Y: d}
	}
	return portrait
}

// PhasePortraitToASCII draws the portrait on a width by height character
// grid. The marker is drawn as '*' and axes as box-drawing lines.
func PhasePortraitToASCII(portrait *PhasePortrait, width, height int) string {
	if portrait == nil || width <= 0 || height <= 0 {
		return ""
	}

	var first *Point
	for _, s := range portrait.Series {
		if len(s) > 0 {
			first = &s[0]
			break
		}
	}
	if first == nil {
		return ""
	}

	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	extend := func(p Point) {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	for _, s := range portrait.Series {
		for _, p := range s {
			extend(p)
		}
	}
	if portrait.Marker != nil {
		extend(*portrait.Marker)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	cell := func(p Point) (row, col int, ok bool) {
		col = int((p.X - minX) / rangeX * float64(width-1))
		row = height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		return row, col, row >= 0 && row < height && col >= 0 && col < width
	}

	for i, s := range portrait.Series {
		glyph := seriesGlyphs[i%len(seriesGlyphs)]
		for _, p := range s {
			if row, col, ok := cell(p); ok {
				canvas[row][col] = glyph
			}
		}
	}

	if minX <= 0 && maxX >= 0 {
		_, col, _ := cell(Point{X: 0, Y: minY})
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row, _, _ := cell(Point{X: minX, Y: 0})
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	if portrait.Marker != nil {
		if row, col, ok := cell(*portrait.Marker); ok {
			canvas[row][col] = '*'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
