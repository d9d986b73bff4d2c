package viz

import (
	"strings"

	"github.com/san-kum/lvsim/internal/analysis"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) in sub-pixel coordinates. The canvas is
// Width*2 by Height*4 sub-pixels with y growing downwards.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Bounds is the data rectangle mapped onto a canvas.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// FitBounds returns the smallest rectangle holding every point, padded by
// 5% per side.
func FitBounds(series ...[]analysis.Point) Bounds {
	var b Bounds
	first := true
	for _, s := range series {
		for _, p := range s {
			if first {
				b = Bounds{p.X, p.X, p.Y, p.Y}
				first = false
				continue
			}
			b.MinX, b.MaxX = min(b.MinX, p.X), max(b.MaxX, p.X)
			b.MinY, b.MaxY = min(b.MinY, p.Y), max(b.MaxY, p.Y)
		}
	}
	dx, dy := b.MaxX-b.MinX, b.MaxY-b.MinY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	return Bounds{b.MinX - dx*0.05, b.MaxX + dx*0.05, b.MinY - dy*0.05, b.MaxY + dy*0.05}
}

func (c *Canvas) project(p analysis.Point, b Bounds) (int, int) {
	w := float64(c.Width*2 - 1)
	h := float64(c.Height*4 - 1)
	x := int((p.X - b.MinX) / (b.MaxX - b.MinX) * w)
	y := int(h - (p.Y-b.MinY)/(b.MaxY-b.MinY)*h)
	return x, y
}

// DrawPolyline connects consecutive points within the given bounds.
func (c *Canvas) DrawPolyline(points []analysis.Point, b Bounds) {
	for i := 1; i < len(points); i++ {
		x0, y0 := c.project(points[i-1], b)
		x1, y1 := c.project(points[i], b)
		c.DrawLine(x0, y0, x1, y1)
	}
	if len(points) == 1 {
		c.Set(c.project(points[0], b))
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
