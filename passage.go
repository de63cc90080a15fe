package plot

import "fmt"

// Passage counts how many times each cell has been drawn over. Generators
// use it to throttle line density: a stroke is skipped or clipped once the
// cells it crosses have been visited too often.
type Passage struct {
	grid
	counters []uint32
}

// NewPassage creates a zeroed counter grid with cells of size precision.
func NewPassage(precision, width, height float64) *Passage {
	g := newGrid(precision, width, height)
	return &Passage{
		grid:     g,
		counters: make([]uint32, g.cols*g.rows),
	}
}

// Count increments the cell containing p and returns the new count.
func (ps *Passage) Count(p Point) uint32 {
	i := ps.index(p)
	ps.counters[i]++
	return ps.counters[i]
}

// CountOnce marks the cell containing p as visited without counting it
// again if it already was.
func (ps *Passage) CountOnce(p Point) {
	i := ps.index(p)
	if ps.counters[i] == 0 {
		ps.counters[i] = 1
	}
}

// Get returns the count of the cell containing p.
func (ps *Passage) Get(p Point) uint32 {
	return ps.counters[ps.index(p)]
}

// IsPainted reports whether the cell containing p was visited at all.
func (ps *Passage) IsPainted(p Point) bool {
	return ps.Get(p) > 0
}

// Add sums other into ps cell by cell. Both grids must share the same
// precision and dimensions.
func (ps *Passage) Add(other *Passage) error {
	if !ps.sameShape(other.grid) {
		return fmt.Errorf("%w: %dx%d@%g vs %dx%d@%g", ErrShapeMismatch,
			ps.cols, ps.rows, ps.precision, other.cols, other.rows, other.precision)
	}
	for i, v := range other.counters {
		ps.counters[i] += v
	}
	return nil
}

// GrowPassage marks as visited every cell within radius of a visited cell.
// Existing counts are kept; newly reached cells get a count of one.
func (ps *Passage) GrowPassage(radius float64) {
	snapshot := make([]uint32, len(ps.counters))
	copy(snapshot, ps.counters)
	ps.dilate(radius,
		func(idx int) bool { return snapshot[idx] > 0 },
		func(idx int) {
			if ps.counters[idx] == 0 {
				ps.counters[idx] = 1
			}
		})
}

// Mask returns a PaintMask with the cells counted at least minCount times.
func (ps *Passage) Mask(minCount uint32) *PaintMask {
	m := &PaintMask{grid: ps.grid, cells: make([]bool, len(ps.counters))}
	for i, v := range ps.counters {
		m.cells[i] = v >= minCount && v > 0
	}
	return m
}

// Reset zeroes every counter.
func (ps *Passage) Reset() {
	clear(ps.counters)
}

// Limit returns a PointPredicate reporting cells already counted limit times
// or more. Pair it with Count to cap how densely an area gets drawn.
func (ps *Passage) Limit(limit uint32) PointPredicate {
	return func(p Point) bool {
		return ps.Get(p) >= limit
	}
}
