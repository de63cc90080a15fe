package main

import (
	"flag"

	"github.com/kelseyhightower/envconfig"
)

// config holds the demo parameters. Environment variables (PLOT_*) set the
// defaults; command line flags override them.
type config struct {
	Seed      float64 `envconfig:"SEED" default:"7"`
	Hash      string  `envconfig:"HASH"`
	Width     float64 `envconfig:"WIDTH" default:"210"`
	Height    float64 `envconfig:"HEIGHT" default:"297"`
	Pad       float64 `envconfig:"PAD" default:"10"`
	Precision float64 `envconfig:"PRECISION" default:"0.5"`
	Circles   int     `envconfig:"CIRCLES" default:"60"`
	Cols      int     `envconfig:"COLS" default:"1"`
	Rows      int     `envconfig:"ROWS" default:"1"`
	Workers   int     `envconfig:"WORKERS" default:"0"`
	Output    string  `envconfig:"OUTPUT" default:"plot.svg"`
	MaskPNG   string  `envconfig:"MASK_PNG"`
	Preview   bool    `envconfig:"PREVIEW" default:"false"`
	Debug     bool    `envconfig:"DEBUG" default:"false"`
}

func loadConfig(args []string) (*config, error) {
	var cfg config
	if err := envconfig.Process("plot", &cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("plotdemo", flag.ContinueOnError)
	fs.Float64Var(&cfg.Seed, "seed", cfg.Seed, "numeric art seed")
	fs.StringVar(&cfg.Hash, "hash", cfg.Hash, "base58 hash seed (overrides -seed)")
	fs.Float64Var(&cfg.Width, "width", cfg.Width, "page width in mm")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "page height in mm")
	fs.Float64Var(&cfg.Pad, "pad", cfg.Pad, "page margin in mm")
	fs.Float64Var(&cfg.Precision, "precision", cfg.Precision, "mask cell size in mm")
	fs.IntVar(&cfg.Circles, "circles", cfg.Circles, "desired circles per cell")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "grid columns")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid rows")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output SVG file")
	fs.StringVar(&cfg.MaskPNG, "mask-png", cfg.MaskPNG, "optional PNG dump of the occupancy mask")
	fs.BoolVar(&cfg.Preview, "preview", cfg.Preview, "print a braille preview")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}
