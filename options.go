package plot

import "math/rand/v2"

// PackOption configures a Pack call.
//
// Example:
//
//	circles := plot.Pack(seed, plot.Bounds(10, 10, 190, 190), fits,
//	    plot.WithIterations(50000),
//	    plot.WithDesiredCount(400),
//	    plot.WithScale(1, 20),
//	)
type PackOption func(*packOptions)

// packOptions holds the tunables of the packing loop.
type packOptions struct {
	iterations   int
	desiredCount int
	optimizeSize int
	pad          float64
	minScale     float64
	maxScale     float64
	rng          *rand.Rand
}

// defaultPackOptions returns the defaults used by most generators.
func defaultPackOptions() packOptions {
	return packOptions{
		iterations:   10000,
		desiredCount: 100,
		optimizeSize: 2,
		pad:          0,
		minScale:     1,
		maxScale:     10,
	}
}

// WithIterations sets the number of random center draws.
// This is the only exit guarantee when the container has no room left.
func WithIterations(n int) PackOption {
	return func(o *packOptions) {
		o.iterations = n
	}
}

// WithDesiredCount stops packing once n circles have been accepted.
func WithDesiredCount(n int) PackOption {
	return func(o *packOptions) {
		o.desiredCount = n
	}
}

// WithOptimizeSize sets how many candidates are collected before the
// largest one is committed. Zero accepts every candidate immediately.
func WithOptimizeSize(n int) PackOption {
	return func(o *packOptions) {
		o.optimizeSize = n
	}
}

// WithPad shrinks every accepted radius by pad.
func WithPad(pad float64) PackOption {
	return func(o *packOptions) {
		o.pad = pad
	}
}

// WithScale sets the radius search range.
func WithScale(minScale, maxScale float64) PackOption {
	return func(o *packOptions) {
		o.minScale = minScale
		o.maxScale = maxScale
	}
}

// WithRand makes Pack draw centers from rng instead of seeding its own
// source. The seed argument of Pack is then ignored. rng is advanced, so
// callers chaining several layers get a different packing per layer.
func WithRand(rng *rand.Rand) PackOption {
	return func(o *packOptions) {
		o.rng = rng
	}
}
