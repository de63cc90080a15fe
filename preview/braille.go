// Package preview renders masks and routes as braille text for a quick
// look in the terminal before plotting.
package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/plot"
)

var (
	borderCol = lipgloss.Color("#243141")
	accentFg  = lipgloss.Color("#7C3AED")
	baseFg    = lipgloss.Color("#E6E6E6")

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	bodyStyle  = lipgloss.NewStyle().Foreground(baseFg)
)

// Canvas is a braille buffer: each text cell holds a 2x4 grid of dots
// covering a region of the plot.
type Canvas struct {
	w, h   int
	dots   [][]uint8
	bounds plot.Rect
}

// New creates a canvas of cols x rows text cells mapped onto bounds.
func New(cols, rows int, bounds plot.Rect) *Canvas {
	cols, rows = max(cols, 1), max(rows, 1)
	dots := make([][]uint8, rows)
	for i := range dots {
		dots[i] = make([]uint8, cols)
	}
	return &Canvas{w: cols, h: rows, dots: dots, bounds: bounds}
}

// dotBits maps the position inside a cell to its braille bit.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (c *Canvas) set(mx, my int) {
	if mx < 0 || my < 0 || mx >= c.w*2 || my >= c.h*4 {
		return
	}
	c.dots[my/4][mx/2] |= dotBits[mx%2][my%4]
}

// toDots maps a plot point to dot coordinates.
func (c *Canvas) toDots(p plot.Point) (int, int) {
	bw, bh := c.bounds.Width(), c.bounds.Height()
	if bw <= 0 || bh <= 0 {
		return -1, -1
	}
	x := (p.X - c.bounds.Min.X) / bw * float64(c.w*2)
	y := (p.Y - c.bounds.Min.Y) / bh * float64(c.h*4)
	return int(math.Floor(x)), int(math.Floor(y))
}

// Occupancy sets every dot whose center is painted in m.
func (c *Canvas) Occupancy(m plot.Occupancy) {
	dw := c.bounds.Width() / float64(c.w*2)
	dh := c.bounds.Height() / float64(c.h*4)
	for my := range c.h * 4 {
		for mx := range c.w * 2 {
			p := plot.Point{
				X: c.bounds.Min.X + (float64(mx)+0.5)*dw,
				Y: c.bounds.Min.Y + (float64(my)+0.5)*dh,
			}
			if m.IsPainted(p) {
				c.set(mx, my)
			}
		}
	}
}

// Routes draws every segment of routes.
func (c *Canvas) Routes(routes []plot.Route) {
	for _, r := range routes {
		for i := 1; i < len(r.Points); i++ {
			x0, y0 := c.toDots(r.Points[i-1])
			x1, y1 := c.toDots(r.Points[i])
			c.line(x0, y0, x1, y1)
		}
	}
}

// line draws on the dot grid using Bresenham.
func (c *Canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines returns the canvas as text, one string per row.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	for y := range c.h {
		row := make([]rune, c.w)
		for x := range c.w {
			if m := c.dots[y][x]; m == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(m))
			}
		}
		out[y] = string(row)
	}
	return out
}

// Render returns the canvas framed in a titled box.
func (c *Canvas) Render(title string) string {
	body := bodyStyle.Render(strings.Join(c.Lines(), "\n"))
	return boxStyle.Render(titleStyle.Render(title) + "\n" + body)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
