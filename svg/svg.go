// Package svg writes plot routes as a plotter-ready SVG document.
//
// Each color index becomes one <g> layer holding a single <path>; all
// coordinates are rounded to two decimals. Page sizes are rounded up to
// whole millimeters, the viewBox keeps the exact size.
package svg

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/plot"
)

// DefaultPalette is used when Document.Palette is empty.
var DefaultPalette = []string{"#000", "#c22", "#26c", "#2a2"}

// Document describes the page the routes are drawn on.
type Document struct {
	// Width and Height are the page size in millimeters.
	Width, Height float64

	// StrokeWidth is the pen width in millimeters. Zero means 0.35.
	StrokeWidth float64

	// Palette maps color indexes to stroke colors, cycling when routes use
	// more colors than listed.
	Palette []string
}

// Write renders routes into w.
func (d Document) Write(w io.Writer, routes []plot.Route) error {
	palette := d.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	stroke := d.StrokeWidth
	if stroke <= 0 {
		stroke = 0.35
	}

	layers := map[int][]plot.Route{}
	var order []int
	for _, r := range routes {
		if _, ok := layers[r.Color]; !ok {
			order = append(order, r.Color)
		}
		layers[r.Color] = append(layers[r.Color], r)
	}

	var b strings.Builder
	canvas := svgo.New(&b)
	canvas.Startunit(int(math.Ceil(d.Width)), int(math.Ceil(d.Height)), "mm",
		fmt.Sprintf(`viewBox="0 0 %s %s"`, format(d.Width), format(d.Height)),
		`style="background:white"`)
	for _, color := range order {
		canvas.Group(
			fmt.Sprintf(`id="layer%d"`, color),
			`fill="none"`,
			fmt.Sprintf(`stroke="%s"`, palette[((color%len(palette))+len(palette))%len(palette)]),
			fmt.Sprintf(`stroke-width="%s"`, format(stroke)),
			`stroke-linecap="round" stroke-linejoin="round"`,
		)
		canvas.Path(PathData(layers[color]))
		canvas.Gend()
	}
	canvas.End()

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("svg: write: %w", err)
	}
	return nil
}

// PathData returns the M/L path commands for routes. Routes with fewer
// than two points are skipped.
func PathData(routes []plot.Route) string {
	var b strings.Builder
	for _, r := range routes {
		if len(r.Points) < 2 {
			continue
		}
		for i, p := range r.Points {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			if i == 0 {
				b.WriteByte('M')
			} else {
				b.WriteByte('L')
			}
			b.WriteString(format(p.X))
			b.WriteByte(',')
			b.WriteString(format(p.Y))
		}
	}
	return b.String()
}

// format rounds to two decimals and trims trailing zeros.
func format(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // normalizes -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
