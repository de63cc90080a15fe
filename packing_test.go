package plot

import (
	"math"
	"testing"
)

func packDefaults() []PackOption {
	return []PackOption{
		WithIterations(1000),
		WithDesiredCount(5),
		WithOptimizeSize(1),
		WithPad(0),
		WithScale(2, 10),
	}
}

func TestPack_Reproducible(t *testing.T) {
	bounds := Bounds(0, 0, 100, 100)
	accept := func(Circle) bool { return true }

	a := Pack(1.0, bounds, accept, packDefaults()...)
	b := Pack(1.0, bounds, accept, packDefaults()...)
	if len(a) == 0 {
		t.Fatal("Pack() placed no circles")
	}
	if len(a) != len(b) {
		t.Fatalf("len differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Float64bits(a[i].X) != math.Float64bits(b[i].X) ||
			math.Float64bits(a[i].Y) != math.Float64bits(b[i].Y) ||
			math.Float64bits(a[i].R) != math.Float64bits(b[i].R) {
			t.Errorf("circle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPack_SeedChangesResult(t *testing.T) {
	bounds := Bounds(0, 0, 100, 100)
	a := Pack(1.0, bounds, nil, packDefaults()...)
	b := Pack(2.0, bounds, nil, packDefaults()...)
	if len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		t.Error("different seeds produced the same first circle")
	}
}

func TestPack_Invariants(t *testing.T) {
	tests := []struct {
		name string
		pad  float64
		opt  int
	}{
		{"no pad", 0, 0},
		{"pad", 1.5, 2},
		{"large batch", 0.5, 8},
	}
	bounds := Bounds(10, 20, 150, 120)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circles := Pack(7, bounds, nil,
				WithIterations(5000),
				WithDesiredCount(60),
				WithOptimizeSize(tt.opt),
				WithPad(tt.pad),
				WithScale(1, 20),
			)
			if len(circles) == 0 {
				t.Fatal("Pack() placed no circles")
			}
			for i, c := range circles {
				if c.R < 0 {
					t.Errorf("circle %d has negative radius %v", i, c.R)
				}
				if !c.Inside(bounds) {
					t.Errorf("circle %d %+v escapes bounds", i, c)
				}
				for j := i + 1; j < len(circles); j++ {
					// Each placed circle was sized against the padded ones, so
					// the gap is larger than one pad.
					if d := c.Dist(circles[j]); d <= 0 || d < tt.pad-1e-9 {
						t.Errorf("circles %d and %d too close: dist %v", i, j, d)
					}
				}
			}
		})
	}
}

func TestPack_LargeCirclesDoNotOverlap(t *testing.T) {
	got := Pack(7, Bounds(10, 20, 150, 120), nil,
		WithIterations(5000), WithDesiredCount(60), WithOptimizeSize(0), WithScale(1, 20))
	if len(got) < 10 {
		t.Fatalf("len = %d, want at least 10", len(got))
	}
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			if d := got[i].Dist(got[j]); d <= 0 {
				t.Errorf("circles %d and %d overlap: %+v %+v dist=%v", i, j, got[i], got[j], d)
			}
		}
	}
}

func TestPack_DesiredCount(t *testing.T) {
	circles := Pack(3, Bounds(0, 0, 200, 200), nil,
		WithIterations(10000),
		WithDesiredCount(7),
		WithScale(1, 5),
	)
	if len(circles) != 7 {
		t.Errorf("len = %d, want 7", len(circles))
	}
}

func TestPack_ExhaustedReturnsPartial(t *testing.T) {
	// Room for a handful of large circles only.
	circles := Pack(5, Bounds(0, 0, 20, 20), nil,
		WithIterations(300),
		WithDesiredCount(1000),
		WithScale(4, 10),
	)
	if len(circles) == 0 || len(circles) >= 1000 {
		t.Errorf("len = %d, want a partial result", len(circles))
	}
}

func TestPack_RespectsPredicate(t *testing.T) {
	mask := NewPaintMask(0.5, 100, 100)
	mask.PaintRectangle(Pt(0, 0), Pt(50, 100))

	circles := Pack(11, Bounds(0, 0, 100, 100), mask.Free(),
		WithIterations(3000),
		WithDesiredCount(30),
		WithScale(1, 15),
	)
	if len(circles) == 0 {
		t.Fatal("Pack() placed no circles")
	}
	for i, c := range circles {
		if c.X-c.R < 49.5 {
			t.Errorf("circle %d %+v overlaps the painted half", i, c)
		}
	}
}

func TestPack_WithRandAdvancesSource(t *testing.T) {
	rng := NewRand(9)
	bounds := Bounds(0, 0, 100, 100)
	a := Pack(0, bounds, nil, WithRand(rng), WithDesiredCount(3))
	b := Pack(0, bounds, nil, WithRand(rng), WithDesiredCount(3))
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("Pack() placed no circles")
	}
	if a[0] == b[0] {
		t.Error("second layer should continue the shared source")
	}

	c := Pack(0, bounds, nil, WithRand(NewRand(9)), WithDesiredCount(3))
	if c[0] != a[0] {
		t.Error("same source state should reproduce the first layer")
	}
}

func TestPack_NoRoom(t *testing.T) {
	circles := Pack(1, Bounds(0, 0, 3, 3), nil, WithScale(5, 10), WithIterations(100))
	if len(circles) != 0 {
		t.Errorf("len = %d, want 0", len(circles))
	}
}

func TestAllCircles(t *testing.T) {
	big := func(c Circle) bool { return c.R > 1 }
	right := func(c Circle) bool { return c.X > 0 }
	p := AllCircles(big, nil, right)
	if !p(NewCircle(1, 0, 2)) {
		t.Error("expected accepted")
	}
	if p(NewCircle(-1, 0, 2)) || p(NewCircle(1, 0, 0.5)) {
		t.Error("expected rejected")
	}
}

func BenchmarkPack(b *testing.B) {
	bounds := Bounds(0, 0, 200, 200)
	b.ReportAllocs()
	for b.Loop() {
		Pack(1, bounds, nil, WithDesiredCount(200), WithIterations(20000), WithScale(0.5, 20))
	}
}
