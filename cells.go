package plot

import (
	"log/slog"
	"time"

	"github.com/gogpu/plot/internal/parallel"
)

// Cell is one independent unit of a grid composition. Each cell gets its
// own bounds and seed; its CellFunc must not share masks or random
// sources with other cells.
type Cell struct {
	Index  int
	Col    int
	Row    int
	Bounds Rect
	Seed   float64
}

// CellFunc produces the routes of a single cell.
type CellFunc func(cell Cell) []Route

// GridCells splits bounds into cols x rows cells in row-major order.
// Each cell seed is derived from seed and the cell index.
func GridCells(bounds Rect, cols, rows int, seed float64) []Cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cw := bounds.Width() / float64(cols)
	ch := bounds.Height() / float64(rows)
	cells := make([]Cell, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			origin := Point{X: bounds.Min.X + float64(col)*cw, Y: bounds.Min.Y + float64(row)*ch}
			idx := len(cells)
			cells = append(cells, Cell{
				Index:  idx,
				Col:    col,
				Row:    row,
				Bounds: Rect{Min: origin, Max: Point{X: origin.X + cw, Y: origin.Y + ch}},
				Seed:   LayerSeed(seed, idx),
			})
		}
	}
	return cells
}

// RenderCells runs fn for every cell on a worker pool and concatenates the
// routes in cell order. The output does not depend on scheduling, so a
// given seed always yields the same routes. workers <= 0 uses GOMAXPROCS.
func RenderCells(cells []Cell, workers int, fn CellFunc) []Route {
	if len(cells) == 0 {
		return nil
	}
	start := time.Now()
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	parts := parallel.Map(pool, len(cells), func(i int) []Route {
		return fn(cells[i])
	})

	var routes []Route
	for _, p := range parts {
		routes = append(routes, p...)
	}
	Logger().Debug("plot: rendered cells",
		slog.Int("cells", len(cells)),
		slog.Int("workers", pool.Workers()),
		slog.Int("routes", len(routes)),
		slog.Duration("elapsed", time.Since(start)))
	return routes
}
