package plot

import (
	"math"
	"testing"
)

func TestCircleDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		want     float64
		collides bool
	}{
		{"apart", NewCircle(0, 0, 1), NewCircle(5, 0, 1), 3, false},
		{"touching", NewCircle(0, 0, 2), NewCircle(4, 0, 2), 0, true},
		{"overlapping", NewCircle(0, 0, 2), NewCircle(3, 0, 2), -1, true},
		{"concentric", NewCircle(1, 1, 1), NewCircle(1, 1, 3), -4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dist(tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Dist() = %v, want %v", got, tt.want)
			}
			if got := tt.a.Collides(tt.b); got != tt.collides {
				t.Errorf("Collides() = %v, want %v", got, tt.collides)
			}
			if tt.a.Collides(tt.b) != tt.b.Collides(tt.a) {
				t.Error("Collides() is not symmetric")
			}
		})
	}
}

func TestCircleContains(t *testing.T) {
	outer := NewCircle(0, 0, 10)
	tests := []struct {
		inner Circle
		want  bool
	}{
		{NewCircle(0, 0, 5), true},
		{NewCircle(4, 0, 5), true},
		{NewCircle(5, 0, 5), false}, // internally tangent
		{NewCircle(8, 0, 5), false},
		{NewCircle(0, 0, 11), false},
	}
	for _, tt := range tests {
		if got := outer.Contains(tt.inner); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.inner, got, tt.want)
		}
	}
}

func TestCircleIncludes(t *testing.T) {
	c := NewCircle(5, 5, 2)
	if !c.Includes(Pt(5, 5)) {
		t.Error("center should be included")
	}
	if !c.Includes(Pt(6.9, 5)) {
		t.Error("point just inside should be included")
	}
	if c.Includes(Pt(7, 5)) {
		t.Error("point on the outline should not be included")
	}
}

func TestCircleInside(t *testing.T) {
	r := Bounds(0, 0, 10, 10)
	if !NewCircle(5, 5, 5).Inside(r) {
		t.Error("circle touching all sides should be inside")
	}
	if NewCircle(1, 5, 2).Inside(r) {
		t.Error("circle crossing the left side should not be inside")
	}
}

func TestCirclePolygon(t *testing.T) {
	c := NewCircle(1, 2, 3)
	pts := c.Polygon(12)
	if len(pts) != 13 {
		t.Fatalf("len = %d, want 13", len(pts))
	}
	if pts[0] != pts[12] {
		t.Error("polygon should be closed")
	}
	for i, p := range pts {
		if d := p.Distance(c.Center()); math.Abs(d-3) > 1e-9 {
			t.Errorf("point %d at distance %v, want 3", i, d)
		}
	}
	if got := len(c.Polygon(1)); got != 4 {
		t.Errorf("Polygon(1) len = %d, want 4", got)
	}
}
