// Command plotdemo packs circles on a page, hatches them and writes the
// clipped routes as SVG.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/preview"
	"github.com/gogpu/plot/svg"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Debug {
		plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	seed := cfg.Seed
	if cfg.Hash != "" {
		rng, err := plot.NewRandFromHash(cfg.Hash)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		seed = rng.Float64() * 1e6
	}

	page := plot.Bounds(cfg.Pad, cfg.Pad, cfg.Width-cfg.Pad, cfg.Height-cfg.Pad)
	cells := plot.GridCells(page, cfg.Cols, cfg.Rows, seed)
	routes := plot.RenderCells(cells, cfg.Workers, func(cell plot.Cell) []plot.Route {
		return renderCell(cfg, cell)
	})

	f, err := os.Create(cfg.Output)
	if err != nil {
		log.Fatalf("output: %v", err)
	}
	doc := svg.Document{Width: cfg.Width, Height: cfg.Height}
	if err := doc.Write(f, routes); err != nil {
		_ = f.Close()
		log.Fatalf("output: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("output: %v", err)
	}

	if cfg.MaskPNG != "" {
		full := plot.NewPaintMask(cfg.Precision, cfg.Width, cfg.Height)
		for _, r := range routes {
			full.PaintPolyline(r.Points, cfg.Precision)
		}
		if err := full.SavePNG(cfg.MaskPNG, 2); err != nil {
			log.Fatalf("mask: %v", err)
		}
	}
	if cfg.Preview {
		c := preview.New(60, 40, plot.Bounds(0, 0, cfg.Width, cfg.Height))
		c.Routes(routes)
		fmt.Println(c.Render(cfg.Output))
	}

	p := message.NewPrinter(language.English)
	length := 0.0
	for _, r := range routes {
		length += r.Length()
	}
	p.Printf("%s: %d routes, %.0f mm of ink\n", cfg.Output, len(routes), length)
}

// renderCell packs circles in one cell, hatches each circle at its own
// angle and hatches the background around them.
func renderCell(cfg *config, cell plot.Cell) []plot.Route {
	const (
		stepping   = 0.3
		dichotomic = 8
	)
	rng := plot.NewRand(cell.Seed)
	inner := cell.Bounds.Inset(2)

	mask := plot.NewPaintMask(cfg.Precision, cfg.Width, cfg.Height)
	circles := plot.Pack(cell.Seed, inner, mask.Free(),
		plot.WithRand(rng),
		plot.WithIterations(20*cfg.Circles+1000),
		plot.WithDesiredCount(cfg.Circles),
		plot.WithOptimizeSize(2),
		plot.WithPad(1),
		plot.WithScale(1.5, math.Min(inner.Width(), inner.Height())/4),
	)

	var routes []plot.Route
	for i, c := range circles {
		outline := c.Polygon(max(16, int(c.R*4)))
		routes = append(routes, plot.NewRoute(i%2, outline...))
		hatch := plot.Hatch(i%2, c.Bounds(), rng.Float64()*math.Pi, 0.8+float64(rng.IntN(3))*0.2)
		routes = append(routes, plot.ClipRoutes(hatch, func(p plot.Point) bool {
			return !c.Includes(p)
		}, stepping, dichotomic)...)
		mask.PaintCircle(c.Center(), c.R)
	}

	// The background keeps a small gap around every circle.
	mask.Grow(1)
	background := plot.Hatch(2, inner, math.Pi/4, 1.2)
	background = plot.ClipRoutesToRect(background, inner, stepping, dichotomic)
	routes = append(routes, plot.ClipRoutes(background, mask.IsOutside(), stepping, dichotomic)...)
	return routes
}
