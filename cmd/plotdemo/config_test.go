package main

import (
	"testing"

	"github.com/gogpu/plot"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Width != 210 || cfg.Height != 297 {
		t.Errorf("page = %vx%v, want 210x297", cfg.Width, cfg.Height)
	}
	if cfg.Output != "plot.svg" {
		t.Errorf("Output = %q, want plot.svg", cfg.Output)
	}
}

func TestLoadConfig_EnvThenFlags(t *testing.T) {
	t.Setenv("PLOT_SEED", "42")
	t.Setenv("PLOT_CIRCLES", "12")

	cfg, err := loadConfig([]string{"-circles", "30"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %v, want 42 from env", cfg.Seed)
	}
	if cfg.Circles != 30 {
		t.Errorf("Circles = %d, want 30 from flag", cfg.Circles)
	}
}

func TestLoadConfig_BadEnv(t *testing.T) {
	t.Setenv("PLOT_WIDTH", "wide")
	if _, err := loadConfig(nil); err == nil {
		t.Error("expected error for non-numeric PLOT_WIDTH")
	}
}

func TestRenderCell_Deterministic(t *testing.T) {
	cfg, err := loadConfig([]string{"-circles", "5", "-width", "60", "-height", "60", "-pad", "5"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	cell := plotCell(cfg)
	a := renderCell(cfg, cell)
	b := renderCell(cfg, cell)
	if len(a) == 0 {
		t.Fatal("renderCell() produced no routes")
	}
	if len(a) != len(b) {
		t.Fatalf("route counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if len(a[i].Points) != len(b[i].Points) || a[i].Points[0] != b[i].Points[0] {
			t.Fatalf("route %d differs", i)
		}
	}
}

func plotCell(cfg *config) plot.Cell {
	page := plot.Bounds(cfg.Pad, cfg.Pad, cfg.Width-cfg.Pad, cfg.Height-cfg.Pad)
	return plot.GridCells(page, 1, 1, cfg.Seed)[0]
}
