package plot

import (
	"math"
	"testing"
)

func TestRoute_Length(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		want  float64
	}{
		{"empty", NewRoute(0), 0},
		{"single point", NewRoute(0, Pt(3, 3)), 0},
		{"segment", NewRoute(0, Pt(0, 0), Pt(3, 4)), 5},
		{"polyline", NewRoute(0, Pt(0, 0), Pt(10, 0), Pt(10, 10)), 20},
		{"repeated point", NewRoute(0, Pt(1, 1), Pt(1, 1), Pt(1, 2)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.route.Length(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoute_Bounds(t *testing.T) {
	if _, ok := NewRoute(0).Bounds(); ok {
		t.Error("Bounds() ok = true for empty route")
	}
	b, ok := NewRoute(0, Pt(4, 1), Pt(-2, 7), Pt(3, 3)).Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	if want := Bounds(-2, 1, 4, 7); b != want {
		t.Errorf("Bounds() = %v, want %v", b, want)
	}
}

func TestRoutesBounds(t *testing.T) {
	if _, ok := RoutesBounds(nil); ok {
		t.Error("RoutesBounds(nil) ok = true")
	}
	routes := []Route{
		NewRoute(0, Pt(1, 1), Pt(2, 2)),
		NewRoute(1),
		NewRoute(2, Pt(-5, 3), Pt(0, 9)),
	}
	b, ok := RoutesBounds(routes)
	if !ok {
		t.Fatal("RoutesBounds() ok = false")
	}
	if want := Bounds(-5, 1, 2, 9); b != want {
		t.Errorf("RoutesBounds() = %v, want %v", b, want)
	}
}

func TestHatch(t *testing.T) {
	area := Bounds(0, 0, 10, 10)
	const spacing = 1.0
	routes := Hatch(4, area, math.Pi/4, spacing)
	if len(routes) < 10 {
		t.Fatalf("len = %d, want at least 10", len(routes))
	}
	dir := Pt(math.Cos(math.Pi/4), math.Sin(math.Pi/4))
	normal := Pt(-dir.Y, dir.X)
	for i, r := range routes {
		if r.Color != 4 {
			t.Errorf("routes[%d].Color = %d, want 4", i, r.Color)
		}
		if len(r.Points) != 2 {
			t.Fatalf("routes[%d] has %d points, want 2", i, len(r.Points))
		}
		if i == 0 {
			continue
		}
		gap := r.Points[0].Sub(routes[i-1].Points[0]).Dot(normal)
		if math.Abs(gap-spacing) > 1e-9 {
			t.Errorf("gap between lines %d and %d = %v, want %v", i-1, i, gap, spacing)
		}
	}
}

func TestHatch_BadSpacing(t *testing.T) {
	for _, s := range []float64{0, -1, math.NaN()} {
		if got := Hatch(0, Bounds(0, 0, 5, 5), 0, s); got != nil {
			t.Errorf("Hatch(spacing=%v) = %d routes, want nil", s, len(got))
		}
	}
}

func TestHatch_ClippedToArea(t *testing.T) {
	area := Bounds(2, 2, 8, 6)
	routes := ClipRoutesToRect(Hatch(0, area, 0.3, 0.5), area, 0.25, 12)
	if len(routes) == 0 {
		t.Fatal("no routes left after clipping")
	}
	grown := area.Inset(-0.01)
	for _, r := range routes {
		for _, p := range r.Points {
			if !grown.Contains(p) {
				t.Errorf("point %v outside %v", p, area)
			}
		}
	}
}
