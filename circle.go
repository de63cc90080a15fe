package plot

import "math"

// Circle is the packing primitive. R must be non-negative; the packer only
// produces circles that satisfy this.
type Circle struct {
	X, Y, R float64
}

// NewCircle creates a circle centered at (x, y) with radius r.
func NewCircle(x, y, r float64) Circle {
	return Circle{X: x, Y: y, R: r}
}

// Center returns the center of the circle.
func (c Circle) Center() Point {
	return Point{X: c.X, Y: c.Y}
}

// Dist returns the gap between the two circle outlines: center distance
// minus both radii. Zero or negative means touching or overlapping.
func (c Circle) Dist(other Circle) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y) - c.R - other.R
}

// Collides reports whether the circles touch or overlap.
func (c Circle) Collides(other Circle) bool {
	return c.Dist(other) <= 0
}

// Contains reports whether other lies fully inside c.
func (c Circle) Contains(other Circle) bool {
	return math.Hypot(c.X-other.X, c.Y-other.Y)-c.R+other.R < 0
}

// Includes reports whether p lies strictly within the circle.
func (c Circle) Includes(p Point) bool {
	return math.Hypot(p.X-c.X, p.Y-c.Y) < c.R
}

// Bounds returns the axis-aligned bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		Min: Point{X: c.X - c.R, Y: c.Y - c.R},
		Max: Point{X: c.X + c.R, Y: c.Y + c.R},
	}
}

// Inside reports whether the circle lies fully inside r.
func (c Circle) Inside(r Rect) bool {
	return c.X-c.R >= r.Min.X && c.X+c.R <= r.Max.X &&
		c.Y-c.R >= r.Min.Y && c.Y+c.R <= r.Max.Y
}

// Polygon samples the outline into n points and repeats the first point at
// the end so the result can be used directly as a closed route.
// n below 3 is raised to 3.
func (c Circle) Polygon(n int) []Point {
	if n < 3 {
		n = 3
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Point{X: c.X + c.R*math.Cos(a), Y: c.Y + c.R*math.Sin(a)})
	}
	return append(pts, pts[0])
}
