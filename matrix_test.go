package grid

import (
	"math"
	"testing"
)

func TestLatticeTransform(t *testing.T) {
	m := Lattice(Pt(2, 0), Pt(1, 3), Pt(10, -5))

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"origin", Pt(0, 0), Pt(10, -5)},
		{"first axis", Pt(1, 0), Pt(12, -5)},
		{"second axis", Pt(0, 1), Pt(11, -2)},
		{"combined", Pt(-2, 3), Pt(9, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.TransformPoint(tt.in)
			if !pointsNear(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInvertRoundTrip(t *testing.T) {
	sq3 := math.Sqrt(3)
	maps := map[string]Matrix{
		"identity": Identity(),
		"square":   Lattice(Pt(4, 0), Pt(0, 4), Pt(1, 2)),
		"flat hex": Lattice(Pt(1.5, sq3/2), Pt(0, sq3), Pt(0, 0)),
		"skewed":   Lattice(Pt(1, 0), Pt(0.5, sq3/2), Pt(-3, 7)),
		"tiny":     Lattice(Pt(1e-9, 0), Pt(0.5e-9, sq3/2*1e-9), Pt(2e-9, 0)),
		"huge":     Lattice(Pt(1e12, 0), Pt(0, 1e12), Pt(-5e12, 0)),
	}
	for name, m := range maps {
		t.Run(name, func(t *testing.T) {
			inv, ok := m.Invert()
			if !ok {
				t.Fatal("Invert reported singular matrix")
			}
			for _, p := range []Point{{0, 0}, {1, -2}, {3.25, 7.5}} {
				if got := inv.TransformPoint(m.TransformPoint(p)); !pointsNear(got, p) {
					t.Errorf("inverse round trip of %v = %v", p, got)
				}
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"collinear", Lattice(Pt(1, 2), Pt(2, 4), Pt(0, 0))},
		{"tiny collinear", Lattice(Pt(1e-9, 2e-9), Pt(2e-9, 4e-9), Pt(0, 0))},
		{"zero", Matrix{}},
		{"nan", Lattice(Pt(math.NaN(), 0), Pt(0, 1), Pt(0, 0))},
		{"inf", Lattice(Pt(math.Inf(1), 0), Pt(0, 1), Pt(0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.m.Invert(); ok {
				t.Errorf("Invert of %+v should fail", tt.m)
			}
		})
	}
}

func pointsNear(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
