package grid

import (
	"math"
	"slices"
	"testing"
)

func TestWithinCounts(t *testing.T) {
	tests := []struct {
		name   string
		count  func() int
		expect int
	}{
		{"hex radius 2", func() int { return Within(Must(NewHex(1)), Hx(3, -1), 2).Len() }, 19},
		{"hex radius 0", func() int { return Within(Must(NewHex(1)), Hx(0, 0), 0).Len() }, 1},
		{"square chebyshev radius 1", func() int { return Within(Must(NewSquare(1)), Sq(0, 0), 1).Len() }, 9},
		{"square manhattan radius 2", func() int {
			return Within(Must(NewSquare(1, WithMetric(Manhattan))), Sq(0, 0), 2).Len()
		}, 13},
		{"triangle radius 1", func() int { return Within(Must(NewTriangle(1)), Tri(0, 0), 1).Len() }, 4},
		{"negative radius", func() int { return Within(Must(NewHex(1)), Hx(0, 0), -1).Len() }, 0},
	}
	for _, tt := range tests {
		if got := tt.count(); got != tt.expect {
			t.Errorf("%s: %d cells, want %d", tt.name, got, tt.expect)
		}
	}
}

func TestRing(t *testing.T) {
	g := Must(NewHex(1))
	for k := range 5 {
		ring := Ring(g, Hx(1, 1), k)
		want := 6 * k
		if k == 0 {
			want = 1
		}
		if ring.Len() != want {
			t.Errorf("Ring(%d) has %d cells, want %d", k, ring.Len(), want)
		}
		for c := range ring.All() {
			if d := g.Distance(Hx(1, 1), c); d != k {
				t.Errorf("Ring(%d) holds %v at distance %d", k, c, d)
			}
		}
	}
	if Ring(g, Hx(0, 0), -1).Len() != 0 {
		t.Error("negative ring not empty")
	}
}

func TestPathWithin(t *testing.T) {
	g := Must(NewSquare(1))
	region := Within(g, Sq(0, 0), 2)
	got := slices.Collect(PathWithin(g, Sq(0, 0), Sq(5, 0), region))
	want := []SquareCoord{Sq(0, 0), Sq(1, 0), Sq(2, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("PathWithin = %v, want %v", got, want)
	}
	if got := slices.Collect(PathWithin(g, Sq(9, 9), Sq(0, 0), region)); len(got) != 0 {
		t.Errorf("PathWithin starting outside = %v", got)
	}
}

func TestDirectionAngle(t *testing.T) {
	flat := Must(NewHex(1))
	if a, ok := DirectionAngle(flat, Hx(0, 0), NorthEast); !ok || math.Abs(a-math.Pi/6) > 1e-12 {
		t.Errorf("flat NorthEast angle = %v, %v, want π/6", a, ok)
	}
	if _, ok := DirectionAngle(flat, Hx(0, 0), East); ok {
		t.Error("flat East angle defined")
	}

	sq := Must(NewSquare(3))
	for d := range sq.Directions(Sq(0, 0)).All() {
		a, _ := DirectionAngle(sq, Sq(0, 0), d)
		if angleGap(a, d.Angle()) > 1e-12 {
			t.Errorf("square %v angle %v, compass says %v", d, a, d.Angle())
		}
	}
}

func TestNearestDirection(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Direction
	}{
		{"just above east", 0.1, NorthEast},
		{"just below east", -0.1, SouthEast},
		{"straight up", math.Pi / 2, North},
		{"wrapped past west", 3*math.Pi - 0.1, NorthWest},
	}
	g := Must(NewHex(1))
	for _, tt := range tests {
		got, ok := NearestDirection(g, Hx(0, 0), tt.angle)
		if !ok || got != tt.want {
			t.Errorf("%s: NearestDirection(%v) = %v, want %v", tt.name, tt.angle, got, tt.want)
		}
	}

	tri := Must(NewTriangle(1))
	if d, _ := NearestDirection(tri, Tri(0, 0), math.Pi/2); d != NorthEast && d != NorthWest {
		t.Errorf("up triangle nearest to north = %v", d)
	}
	if d, _ := NearestDirection(tri, Tri(1, 0), math.Pi/2); d != North {
		t.Errorf("down triangle nearest to north = %v", d)
	}
}
