package plot

import (
	"log/slog"
	"slices"
)

// CirclePredicate reports whether a circle is acceptable. Generators use it
// to express their shape constraint: inside a polygon, below a height map,
// not on an already painted area.
type CirclePredicate func(Circle) bool

// PointPredicate reports a boolean property of a point, typically
// "is this point outside the drawable region".
type PointPredicate func(Point) bool

// AllCircles combines predicates with logical AND. Nil entries are skipped.
func AllCircles(preds ...CirclePredicate) CirclePredicate {
	return func(c Circle) bool {
		for _, p := range preds {
			if p != nil && !p(c) {
				return false
			}
		}
		return true
	}
}

// Pack places non-overlapping circles inside bounds by randomized rejection
// sampling plus local radius maximization.
//
// Each iteration draws a uniform center in bounds (x then y), finds the
// largest legal radius there with SearchCircleRadius and shrinks it by the
// pad. Candidates accumulate in a batch; once the batch holds more than the
// optimize size, the largest candidate is committed and the batch is
// discarded. Packing stops when the desired count is reached or the
// iterations are exhausted; fewer circles than desired is not an error.
//
// The result is fully determined by seed (or the WithRand source) and the
// options. Circles are returned in discovery order.
func Pack(seed float64, bounds Rect, fits CirclePredicate, opts ...PackOption) []Circle {
	o := defaultPackOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng
	if rng == nil {
		rng = NewRand(seed)
	}
	if o.maxScale < o.minScale {
		Logger().Warn("plot: inverted packing scale range",
			slog.Float64("min", o.minScale), slog.Float64("max", o.maxScale))
	}

	placed := NewCircleIndex(bounds)
	var tries []Circle
	drawn := 0
	for drawn < o.iterations && placed.Len() < o.desiredCount {
		drawn++
		center := Point{
			X: RandRange(rng, bounds.Min.X, bounds.Max.X),
			Y: RandRange(rng, bounds.Min.Y, bounds.Max.Y),
		}
		size, ok := SearchCircleRadius(center, placed, bounds, fits, o.minScale, o.maxScale)
		if !ok {
			continue
		}
		r := size - o.pad
		if r < 0 {
			continue
		}
		tries = append(tries, Circle{X: center.X, Y: center.Y, R: r})
		if len(tries) > o.optimizeSize {
			slices.SortStableFunc(tries, func(a, b Circle) int {
				switch {
				case a.R > b.R:
					return -1
				case a.R < b.R:
					return 1
				}
				return 0
			})
			placed.Insert(tries[0])
			tries = tries[:0]
		}
	}

	Logger().Debug("plot: packing done",
		slog.Int("placed", placed.Len()),
		slog.Int("desired", o.desiredCount),
		slog.Int("draws", drawn))
	return slices.Clone(placed.Circles())
}
