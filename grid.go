package plot

import (
	"log/slog"
	"math"
)

// DefaultPrecision is the cell size used when a non-positive precision is
// requested.
const DefaultPrecision = 1.0

// grid is the cell layout shared by PaintMask and Passage. Cell (i, j)
// covers [i*precision, (i+1)*precision) x [j*precision, (j+1)*precision)
// and is sampled at its center.
type grid struct {
	precision float64
	width     float64
	height    float64
	cols      int
	rows      int
}

func newGrid(precision, width, height float64) grid {
	if !(precision > 0) {
		Logger().Warn("plot: non-positive mask precision, using default",
			slog.Float64("precision", precision))
		precision = DefaultPrecision
	}
	cols := int(math.Ceil(width / precision))
	rows := int(math.Ceil(height / precision))
	return grid{
		precision: precision,
		width:     width,
		height:    height,
		cols:      max(cols, 1),
		rows:      max(rows, 1),
	}
}

func (g grid) sameShape(o grid) bool {
	return g.cols == o.cols && g.rows == o.rows && g.precision == o.precision
}

// clampCol and clampRow clamp in float space before converting, so huge or
// infinite coordinates land on the matching edge. NaN maps to 0.
func (g grid) clampCol(x float64) int {
	return clampInt(int(math.Floor(clampFloat(x, g.width)/g.precision)), 0, g.cols-1)
}

func (g grid) clampRow(y float64) int {
	return clampInt(int(math.Floor(clampFloat(y, g.height)/g.precision)), 0, g.rows-1)
}

func clampFloat(v, hi float64) float64 {
	if !(v > 0) {
		return 0
	}
	return math.Min(v, hi)
}

// index maps a point to its cell, clamping into the grid.
func (g grid) index(p Point) int {
	return g.clampRow(p.Y)*g.cols + g.clampCol(p.X)
}

// center returns the sample point of cell (i, j).
func (g grid) center(i, j int) Point {
	return Point{X: (float64(i) + 0.5) * g.precision, Y: (float64(j) + 0.5) * g.precision}
}

// cellRange returns the inclusive cell range whose cells intersect r.
// ok is false when r misses the grid entirely.
func (g grid) cellRange(r Rect) (i0, j0, i1, j1 int, ok bool) {
	if r.Max.X < 0 || r.Max.Y < 0 || r.Min.X > float64(g.cols)*g.precision || r.Min.Y > float64(g.rows)*g.precision {
		return 0, 0, 0, 0, false
	}
	i0, j0 = g.clampCol(r.Min.X), g.clampRow(r.Min.Y)
	i1, j1 = g.clampCol(r.Max.X), g.clampRow(r.Max.Y)
	return i0, j0, i1, j1, true
}

// eachIn calls fn for every cell of the range covering r.
func (g grid) eachIn(r Rect, fn func(idx int, center Point)) {
	i0, j0, i1, j1, ok := g.cellRange(r)
	if !ok {
		return
	}
	for j := j0; j <= j1; j++ {
		for i := i0; i <= i1; i++ {
			fn(j*g.cols+i, g.center(i, j))
		}
	}
}

// diskOffsets lists the cell offsets whose center distance is <= radius.
func (g grid) diskOffsets(radius float64) [][2]int {
	if !(radius > 0) {
		return nil
	}
	k := int(math.Floor(radius / g.precision))
	r2 := radius * radius
	var offsets [][2]int
	for dy := -k; dy <= k; dy++ {
		for dx := -k; dx <= k; dx++ {
			ox, oy := float64(dx)*g.precision, float64(dy)*g.precision
			if ox*ox+oy*oy <= r2 {
				offsets = append(offsets, [2]int{dx, dy})
			}
		}
	}
	return offsets
}

// dilate calls mark for every cell within the disk offsets of a cell for
// which seeded reports true. seeded must read a frozen snapshot.
func (g grid) dilate(radius float64, seeded func(idx int) bool, mark func(idx int)) {
	offsets := g.diskOffsets(radius)
	if len(offsets) == 0 {
		return
	}
	for j := 0; j < g.rows; j++ {
		for i := 0; i < g.cols; i++ {
			if !seeded(j*g.cols + i) {
				continue
			}
			for _, o := range offsets {
				x, y := i+o[0], j+o[1]
				if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
					continue
				}
				mark(y*g.cols + x)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
