package plot

import (
	"log/slog"
	"math"
)

// ClipRoutes crops routes against a region given as an "outside" predicate.
//
// Each segment is walked in steps of stepping so that crossings in the
// middle of long segments are caught. When two consecutive samples disagree
// on isOutside, the crossing is refined by dichotomicIterations halvings and
// the current sub-polyline is closed (leaving) or started (entering) there.
//
// The output only contains polylines lying in the inside region, each
// carrying the color of its source route. Inside vertices are kept as-is,
// so a route that never leaves the region is returned unchanged. Routes with
// fewer than two points and single-point runs are dropped.
func ClipRoutes(routes []Route, isOutside PointPredicate, stepping float64, dichotomicIterations int) []Route {
	if !(stepping > 0) {
		Logger().Warn("plot: non-positive clip stepping, using 1", slog.Float64("stepping", stepping))
		stepping = 1
	}

	// crossing bisects between an inside and an outside sample.
	crossing := func(inside, outside Point) Point {
		a, b := inside, outside
		for range dichotomicIterations {
			mid := a.Lerp(b, 0.5)
			if isOutside(mid) {
				b = mid
			} else {
				a = mid
			}
		}
		return a.Lerp(b, 0.5)
	}

	var out []Route
	emit := func(color int, pts []Point) {
		if len(pts) > 1 {
			out = append(out, Route{Color: color, Points: pts})
		}
	}

	for _, route := range routes {
		if len(route.Points) < 2 {
			continue
		}
		prev := route.Points[0]
		prevOutside := isOutside(prev)
		var current []Point
		if !prevOutside {
			current = append(current, prev)
		}
		for _, p := range route.Points[1:] {
			start := prev
			d := start.Distance(p)
			if d > 0 {
				dir := p.Sub(start).Mul(1 / d)
				steps := int(math.Ceil(d / stepping))
				v := 0.0
				for range steps {
					v = math.Min(v+stepping, d)
					q := start.Add(dir.Mul(v))
					qOutside := isOutside(q)
					if qOutside != prevOutside {
						if qOutside {
							current = append(current, crossing(prev, q))
							emit(route.Color, current)
							current = nil
						} else {
							current = append(current, crossing(q, prev))
						}
						prevOutside = qOutside
					}
					prev = q
				}
			}
			prev = p
			if !prevOutside {
				current = append(current, p)
			}
		}
		emit(route.Color, current)
	}

	Logger().Debug("plot: clipped routes", slog.Int("in", len(routes)), slog.Int("out", len(out)))
	return out
}

// ClipRoutesToRect keeps the parts of routes inside r.
func ClipRoutesToRect(routes []Route, r Rect, stepping float64, dichotomicIterations int) []Route {
	return ClipRoutes(routes, func(p Point) bool { return !r.Contains(p) }, stepping, dichotomicIterations)
}

// ClipRoutesToPolygon keeps the parts of routes inside the polygon.
func ClipRoutesToPolygon(routes []Route, polygon []Point, stepping float64, dichotomicIterations int) []Route {
	return ClipRoutes(routes, func(p Point) bool { return !PolygonContains(polygon, p) }, stepping, dichotomicIterations)
}
