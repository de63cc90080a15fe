// Package plot is the geometric core shared by generative plotter pieces.
//
// # Overview
//
// Every piece computes colored polylines (routes) from a seed and a few
// numeric parameters. The hard geometric work is always the same and lives
// here:
//   - Circle packing: randomized rejection sampling with bisection sizing
//   - Occupancy masks: rasterized boolean (PaintMask) and counter (Passage)
//     grids with circle, polygon, rectangle and stroke painters
//   - Clipping: cropping routes against any "outside" predicate with
//     sub-cell accurate crossings
//
// # Quick Start
//
//	import "github.com/gogpu/plot"
//
//	bounds := plot.Bounds(10, 10, 200, 200)
//	mask := plot.NewPaintMask(0.5, 210, 210)
//
//	circles := plot.Pack(seed, bounds, mask.Free(),
//	    plot.WithDesiredCount(50),
//	    plot.WithScale(2, 30),
//	)
//	mask.PaintCircles(circles)
//
//	hatch := plot.Hatch(0, bounds, math.Pi/4, 1.5)
//	routes := plot.ClipRoutes(hatch, mask.IsOutside(), 0.5, 7)
//
// # Determinism
//
// Given the same seed and parameters every function returns identical
// output. Randomness only comes from NewRand, NewRandFromHash or a source
// passed explicitly with WithRand. RenderCells is the only concurrent entry
// point and preserves cell order.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down, in the
// same units as the final SVG (usually millimeters).
package plot

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
