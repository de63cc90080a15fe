package plot

import (
	"math"
	"math/rand/v2"
)

// Occupancy is anything that can tell whether a point is already used.
// Both PaintMask and Passage implement it.
type Occupancy interface {
	IsPainted(p Point) bool
}

// PaintMask is a rasterized boolean occupancy grid over [0,width]x[0,height].
//
// Painting is monotonic: a painted cell stays painted until one of the
// explicit Unpaint*, Invert or Reset methods is called. Point queries clamp
// into the grid, so points beyond the canvas report the nearest edge cell.
type PaintMask struct {
	grid
	cells []bool
}

// NewPaintMask creates an empty mask with cells of size precision.
// A non-positive precision falls back to DefaultPrecision and the grid is
// never smaller than one cell.
func NewPaintMask(precision, width, height float64) *PaintMask {
	g := newGrid(precision, width, height)
	return &PaintMask{
		grid:  g,
		cells: make([]bool, g.cols*g.rows),
	}
}

// Precision returns the cell size.
func (m *PaintMask) Precision() float64 { return m.precision }

// Width returns the canvas width.
func (m *PaintMask) Width() float64 { return m.width }

// Height returns the canvas height.
func (m *PaintMask) Height() float64 { return m.height }

// Cols returns the number of cell columns.
func (m *PaintMask) Cols() int { return m.cols }

// Rows returns the number of cell rows.
func (m *PaintMask) Rows() int { return m.rows }

// IsPainted reports whether the cell containing p is painted.
func (m *PaintMask) IsPainted(p Point) bool {
	return m.cells[m.index(p)]
}

// IsOutside is IsPainted as a PointPredicate, for use with ClipRoutes.
func (m *PaintMask) IsOutside() PointPredicate {
	return m.IsPainted
}

// PaintedCount returns the number of painted cells.
func (m *PaintMask) PaintedCount() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// PaintCircle paints every cell whose center lies within radius of center.
func (m *PaintMask) PaintCircle(center Point, radius float64) {
	if !(radius > 0) {
		return
	}
	r2 := radius * radius
	c := Circle{X: center.X, Y: center.Y, R: radius}
	m.eachIn(c.Bounds(), func(idx int, p Point) {
		if p.DistanceSquared(center) <= r2 {
			m.cells[idx] = true
		}
	})
}

// PaintCircles paints each circle in turn.
func (m *PaintMask) PaintCircles(circles []Circle) {
	for _, c := range circles {
		m.PaintCircle(c.Center(), c.R)
	}
}

// PaintPolygon paints the cells inside the polygon (even-odd rule).
// Fewer than three vertices is a no-op.
func (m *PaintMask) PaintPolygon(vertices []Point) {
	if len(vertices) < 3 {
		return
	}
	m.eachIn(pointsBounds(vertices), func(idx int, p Point) {
		if PolygonContains(vertices, p) {
			m.cells[idx] = true
		}
	})
}

// PaintRectangle paints the cells whose center lies in the box spanned by
// lo and hi.
func (m *PaintMask) PaintRectangle(lo, hi Point) {
	r := NewRect(lo, hi)
	m.eachIn(r, func(idx int, p Point) {
		if r.Contains(p) {
			m.cells[idx] = true
		}
	})
}

// PaintPolyline paints the cells within strokeWidth of the polyline, using
// the distance to the nearest segment. Fewer than two points is a no-op.
func (m *PaintMask) PaintPolyline(points []Point, strokeWidth float64) {
	if len(points) < 2 || strokeWidth < 0 {
		return
	}
	m.eachIn(pointsBounds(points).Inset(-strokeWidth), func(idx int, p Point) {
		if polylineDistance(points, p) <= strokeWidth {
			m.cells[idx] = true
		}
	})
}

// PaintFn paints every cell whose center satisfies paint.
func (m *PaintMask) PaintFn(paint PointPredicate) {
	for j := 0; j < m.rows; j++ {
		for i := 0; i < m.cols; i++ {
			if paint(m.center(i, j)) {
				m.cells[j*m.cols+i] = true
			}
		}
	}
}

// PaintBorders paints the cells within pad of the canvas edges.
func (m *PaintMask) PaintBorders(pad float64) {
	m.setBorders(pad, true)
}

// UnpaintBorders clears the cells within pad of the canvas edges.
func (m *PaintMask) UnpaintBorders(pad float64) {
	m.setBorders(pad, false)
}

func (m *PaintMask) setBorders(pad float64, v bool) {
	for j := 0; j < m.rows; j++ {
		for i := 0; i < m.cols; i++ {
			p := m.center(i, j)
			if p.X < pad || p.Y < pad || p.X > m.width-pad || p.Y > m.height-pad {
				m.cells[j*m.cols+i] = v
			}
		}
	}
}

// Union paints every cell whose center other reports as painted.
// other may use a different precision.
func (m *PaintMask) Union(other Occupancy) {
	for j := 0; j < m.rows; j++ {
		for i := 0; i < m.cols; i++ {
			if other.IsPainted(m.center(i, j)) {
				m.cells[j*m.cols+i] = true
			}
		}
	}
}

// Intersects reports whether a painted cell of m is also painted in other.
func (m *PaintMask) Intersects(other Occupancy) bool {
	for j := 0; j < m.rows; j++ {
		for i := 0; i < m.cols; i++ {
			if m.cells[j*m.cols+i] && other.IsPainted(m.center(i, j)) {
				return true
			}
		}
	}
	return false
}

// OverlapsCircle reports whether any painted cell center lies inside c.
func (m *PaintMask) OverlapsCircle(c Circle) bool {
	r2 := c.R * c.R
	center := c.Center()
	i0, j0, i1, j1, ok := m.cellRange(c.Bounds())
	if !ok {
		return false
	}
	for j := j0; j <= j1; j++ {
		for i := i0; i <= i1; i++ {
			if m.cells[j*m.cols+i] && m.center(i, j).DistanceSquared(center) <= r2 {
				return true
			}
		}
	}
	return false
}

// Free returns a CirclePredicate accepting circles that cover no painted
// cell. It is the usual "not already masked" packing constraint.
func (m *PaintMask) Free() CirclePredicate {
	return func(c Circle) bool {
		return !m.OverlapsCircle(c)
	}
}

// Grow dilates the painted region: every cell whose center is within
// radius of a painted cell center becomes painted. Growth reads a snapshot,
// so the result does not depend on scan order.
func (m *PaintMask) Grow(radius float64) {
	snapshot := make([]bool, len(m.cells))
	copy(snapshot, m.cells)
	m.dilate(radius,
		func(idx int) bool { return snapshot[idx] },
		func(idx int) { m.cells[idx] = true })
}

// PaintedBoundaries returns the tight bounding box of the painted cells,
// clipped to the canvas. ok is false when nothing is painted.
func (m *PaintMask) PaintedBoundaries() (Rect, bool) {
	minI, minJ := m.cols, m.rows
	maxI, maxJ := -1, -1
	for j := 0; j < m.rows; j++ {
		for i := 0; i < m.cols; i++ {
			if !m.cells[j*m.cols+i] {
				continue
			}
			minI, maxI = min(minI, i), max(maxI, i)
			minJ, maxJ = min(minJ, j), max(maxJ, j)
		}
	}
	if maxI < 0 {
		return Rect{}, false
	}
	p := m.precision
	return Rect{
		Min: Point{X: float64(minI) * p, Y: float64(minJ) * p},
		Max: Point{
			X: math.Min(float64(maxI+1)*p, m.width),
			Y: math.Min(float64(maxJ+1)*p, m.height),
		},
	}, true
}

// FindEmptySpot draws up to attempts uniform points on the canvas and
// returns the first that is not painted.
func (m *PaintMask) FindEmptySpot(rng *rand.Rand, attempts int) (Point, bool) {
	for range attempts {
		p := Point{X: RandRange(rng, 0, m.width), Y: RandRange(rng, 0, m.height)}
		if !m.IsPainted(p) {
			return p, true
		}
	}
	return Point{}, false
}

// Invert flips every cell.
func (m *PaintMask) Invert() {
	for i := range m.cells {
		m.cells[i] = !m.cells[i]
	}
}

// Reset clears the mask.
func (m *PaintMask) Reset() {
	clear(m.cells)
}

// Clone creates a copy of the mask.
func (m *PaintMask) Clone() *PaintMask {
	c := m.CloneEmpty()
	copy(c.cells, m.cells)
	return c
}

// CloneEmpty creates an empty mask with the same layout.
func (m *PaintMask) CloneEmpty() *PaintMask {
	return &PaintMask{grid: m.grid, cells: make([]bool, len(m.cells))}
}

// CloneRescaled resamples the mask at a new precision. Each new cell takes
// the state of the old cell under its center.
func (m *PaintMask) CloneRescaled(precision float64) *PaintMask {
	c := NewPaintMask(precision, m.width, m.height)
	c.Union(m)
	return c
}

func pointsBounds(points []Point) Rect {
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X, r.Min.Y = math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)
		r.Max.X, r.Max.Y = math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)
	}
	return r
}

func polylineDistance(points []Point, p Point) float64 {
	best := math.Inf(1)
	for i := 1; i < len(points); i++ {
		best = math.Min(best, p.SegmentDistance(points[i-1], points[i]))
	}
	return best
}
