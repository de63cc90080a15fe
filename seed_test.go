package plot

import (
	"errors"
	"testing"
)

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(1.5), NewRand(1.5)
	for i := range 20 {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if NewRand(1.5).Uint64() == NewRand(2.5).Uint64() {
		t.Error("different seeds should diverge")
	}
}

func TestNewRandFromHash(t *testing.T) {
	const hash = "ooVTGMBkYEzFWm8bGStxC8YphaX2Wzd1xbFVn3cnKRAdXajQGF6"

	a, err := NewRandFromHash(hash)
	if err != nil {
		t.Fatalf("NewRandFromHash() error = %v", err)
	}
	b, _ := NewRandFromHash(hash)
	if a.Uint64() != b.Uint64() {
		t.Error("same hash should give the same sequence")
	}

	if _, err := NewRandFromHash("short"); err != nil {
		t.Errorf("short hash should be zero padded, got %v", err)
	}

	// Digits past the 43rd are ignored.
	c, err := NewRandFromHash(hash + "zzzz")
	if err != nil {
		t.Fatalf("NewRandFromHash() error = %v", err)
	}
	d, _ := NewRandFromHash(hash)
	if c.Uint64() != d.Uint64() {
		t.Error("trailing digits should not change the sequence")
	}
}

func TestNewRandFromHash_Errors(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want error
	}{
		{"empty", "", ErrInvalidSeed},
		{"bad alphabet", "0OIl", ErrInvalidSeed},
		{"prefix only", "oo", ErrInvalidSeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRandFromHash(tt.hash)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRandRange(t *testing.T) {
	rng := NewRand(3)
	for range 1000 {
		if v := RandRange(rng, -2, 5); v < -2 || v >= 5 {
			t.Fatalf("RandRange() = %v out of [-2, 5)", v)
		}
	}
	if v := RandRange(rng, 4, 4); v != 4 {
		t.Errorf("empty range = %v, want 4", v)
	}
}

func TestLayerSeed(t *testing.T) {
	if LayerSeed(1, 0) == LayerSeed(1, 1) {
		t.Error("layers should get distinct seeds")
	}
	if LayerSeed(2, 3) != LayerSeed(2, 3) {
		t.Error("LayerSeed should be pure")
	}
}
