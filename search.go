package plot

import "math"

// SearchTolerance is the interval width at which ScalingSearch stops
// bisecting.
const SearchTolerance = 0.1

// maxBisections bounds the search when the range is not finite.
const maxBisections = 64

// ScalingSearch returns the largest size in [minScale, maxScale] for which
// legal reports true, found by bisection. It returns false when
// legal(minScale) is already false.
//
// legal is expected to be non-increasing in size (once false, false for all
// larger sizes). This is not verified: a predicate that flips back and forth
// gives a deterministic but otherwise unspecified result. Mask-backed
// predicates are often only approximately monotonic and rely on exactly
// this behavior.
//
// An inverted range (maxScale < minScale) returns minScale if it is legal.
func ScalingSearch(legal func(size float64) bool, minScale, maxScale float64) (float64, bool) {
	from, to := minScale, maxScale
	for i := 0; ; i++ {
		if !legal(from) {
			return 0, false
		}
		if to-from < SearchTolerance || i >= maxBisections {
			return from, true
		}
		middle := (to + from) / 2
		if legal(middle) {
			from = middle
		} else {
			to = middle
		}
	}
}

// SearchCircleRadius finds the largest radius for a circle centered at
// center that stays inside bounds, does not collide with any circle in
// placed and satisfies fits. A nil fits accepts everything.
func SearchCircleRadius(center Point, placed *CircleIndex, bounds Rect, fits CirclePredicate, minScale, maxScale float64) (float64, bool) {
	var neighbors []Circle
	if placed != nil {
		reach := Circle{X: center.X, Y: center.Y, R: math.Max(minScale, maxScale)}
		neighbors = placed.Near(reach)
	}
	return ScalingSearch(func(size float64) bool {
		c := Circle{X: center.X, Y: center.Y, R: size}
		if !c.Inside(bounds) {
			return false
		}
		for _, other := range neighbors {
			if c.Collides(other) {
				return false
			}
		}
		return fits == nil || fits(c)
	}, minScale, maxScale)
}
