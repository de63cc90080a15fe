package plot

import (
	"math"

	"github.com/jbeda/geom"
)

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Bounds is shorthand for NewRect(Pt(minX, minY), Pt(maxX, maxY)).
func Bounds(minX, minY, maxX, maxY float64) Rect {
	return NewRect(Pt(minX, minY), Pt(maxX, maxY))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset shrinks the rectangle by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Point{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}

// Polygon returns the four corners in clockwise order starting at Min.
func (r Rect) Polygon() []Point {
	return []Point{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}}
}

// geomRect converts to the quadtree rectangle type.
func (r Rect) geomRect() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: r.Min.X, Y: r.Min.Y},
		Max: geom.Coord{X: r.Max.X, Y: r.Max.Y},
	}
}
