package plot

import (
	"github.com/jbeda/geom"
	"github.com/jbeda/geom/qtree"
)

const nearMargin = 1e-6

// indexedCircle is the quadtree item for a placed circle. seq is the
// insertion index and doubles as identity.
type indexedCircle struct {
	seq    int
	circle Circle
}

func (ic indexedCircle) Bounds() geom.Rect {
	return ic.circle.Bounds().geomRect()
}

func (ic indexedCircle) Equals(oi interface{}) bool {
	o, ok := oi.(indexedCircle)
	return ok && o.seq == ic.seq
}

// CircleIndex holds placed circles in discovery order and answers
// neighborhood queries through a quadtree.
//
// Circles whose bounding box escapes the index bounds are kept in a flat
// overflow list and are always returned by Near. The tree itself spans a
// slightly larger area so circles touching the bounds are stored strictly
// inside it.
type CircleIndex struct {
	bounds   Rect
	tree     *qtree.Tree
	circles  []Circle
	overflow []Circle
	maxR     float64
}

// NewCircleIndex creates an empty index covering bounds.
func NewCircleIndex(bounds Rect) *CircleIndex {
	return &CircleIndex{
		bounds: bounds,
		tree:   qtree.New(qtree.ConfigDefault(), bounds.Inset(-1).geomRect()),
	}
}

// Insert appends c to the index.
func (ix *CircleIndex) Insert(c Circle) {
	seq := len(ix.circles)
	ix.circles = append(ix.circles, c)
	ix.maxR = max(ix.maxR, c.R)
	if !c.Inside(ix.bounds) {
		ix.overflow = append(ix.overflow, c)
		return
	}
	ix.tree.Insert(indexedCircle{seq: seq, circle: c})
}

// Len returns the number of placed circles.
func (ix *CircleIndex) Len() int {
	return len(ix.circles)
}

// Circles returns the placed circles in insertion order.
// The returned slice must not be modified.
func (ix *CircleIndex) Circles() []Circle {
	return ix.circles
}

// Near returns a superset of the placed circles that can collide with c.
// The order is unspecified.
//
// The quadtree keeps a circle straddling a split in only one of the
// quadrants it touches, so the query box is widened by the largest placed
// diameter to always reach that quadrant.
func (ix *CircleIndex) Near(c Circle) []Circle {
	if len(ix.circles) == 0 {
		return nil
	}
	found := make(map[qtree.Item]bool)
	// Tangent circles collide, so touching boxes must be reported too.
	ix.tree.CollectIntersect(c.Bounds().Inset(-2*ix.maxR-nearMargin).geomRect(), found)
	out := make([]Circle, 0, len(found)+len(ix.overflow))
	for item := range found {
		out = append(out, item.(indexedCircle).circle)
	}
	return append(out, ix.overflow...)
}

// Collides reports whether c collides with any placed circle.
func (ix *CircleIndex) Collides(c Circle) bool {
	for _, other := range ix.Near(c) {
		if c.Collides(other) {
			return true
		}
	}
	return false
}
