package plot

import "math"

// Route is a colored polyline, the unit of output geometry.
// Points need not be unique or closed.
type Route struct {
	Color  int
	Points []Point
}

// NewRoute creates a route with the given color index.
func NewRoute(color int, points ...Point) Route {
	return Route{Color: color, Points: points}
}

// Length returns the total length of the polyline.
func (r Route) Length() float64 {
	l := 0.0
	for i := 1; i < len(r.Points); i++ {
		l += r.Points[i-1].Distance(r.Points[i])
	}
	return l
}

// Bounds returns the bounding box of the route. ok is false for an empty
// route.
func (r Route) Bounds() (Rect, bool) {
	if len(r.Points) == 0 {
		return Rect{}, false
	}
	return pointsBounds(r.Points), true
}

// RoutesBounds returns the bounding box of all non-empty routes.
func RoutesBounds(routes []Route) (Rect, bool) {
	var out Rect
	found := false
	for _, r := range routes {
		b, ok := r.Bounds()
		if !ok {
			continue
		}
		if !found {
			out, found = b, true
			continue
		}
		out = out.Union(b)
	}
	return out, found
}

// Hatch covers area with parallel lines at the given angle and spacing.
// The lines overshoot area and are meant to be cropped with ClipRoutes.
func Hatch(color int, area Rect, angle, spacing float64) []Route {
	if !(spacing > 0) {
		return nil
	}
	c := area.Center()
	half := math.Hypot(area.Width(), area.Height())/2 + spacing
	dir := Point{X: math.Cos(angle), Y: math.Sin(angle)}
	normal := Point{X: -dir.Y, Y: dir.X}
	var routes []Route
	for d := -half; d <= half; d += spacing {
		o := c.Add(normal.Mul(d))
		routes = append(routes, NewRoute(color, o.Sub(dir.Mul(half)), o.Add(dir.Mul(half))))
	}
	return routes
}
