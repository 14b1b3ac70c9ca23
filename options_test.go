package grid

import (
	"errors"
	"math"
	"testing"
)

func TestBuildOptionsDefaults(t *testing.T) {
	o, err := buildOptions(1, nil)
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}
	if o.orientation != FlatTop || o.metric != Chebyshev || o.workers != 1 || o.bounded {
		t.Errorf("defaults = %+v", o)
	}
}

func TestConstructorErrors(t *testing.T) {
	tests := []struct {
		name string
		size float64
		opts []Option
		want error
	}{
		{"zero size", 0, nil, ErrInvalidCellSize},
		{"negative size", -3, nil, ErrInvalidCellSize},
		{"NaN size", math.NaN(), nil, ErrInvalidCellSize},
		{"infinite size", math.Inf(1), nil, ErrInvalidCellSize},
		{"vanishing size", 1e-200, nil, ErrInvalidCellSize},
		{"overflowing size", 1e200, nil, ErrInvalidCellSize},
		{"bad orientation", 1, []Option{WithOrientation(Orientation(7))}, ErrInvalidOrientation},
		{"bad metric", 1, []Option{WithMetric(Metric(9))}, ErrInvalidMetric},
		{"flat bounds", 1, []Option{WithBounds(R(0, 0, 10, 0))}, ErrInvalidBounds},
		{"negative workers", 1, []Option{WithWorkers(-2)}, ErrInvalidWorkers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSquare(tt.size, tt.opts...); !errors.Is(err, tt.want) {
				t.Errorf("NewSquare error = %v, want %v", err, tt.want)
			}
			if _, err := NewHex(tt.size, tt.opts...); !errors.Is(err, tt.want) {
				t.Errorf("NewHex error = %v, want %v", err, tt.want)
			}
			if _, err := NewTriangle(tt.size, tt.opts...); !errors.Is(err, tt.want) {
				t.Errorf("NewTriangle error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWithBoundsCanonicalizes(t *testing.T) {
	g := Must(NewSquare(1, WithBounds(R(4, 3, 0, 0))))
	if _, ok := g.FromScreen(Pt(2, 2)); !ok {
		t.Error("point inside reversed bounds rejected")
	}
	if _, ok := g.FromScreen(Pt(-1, 2)); ok {
		t.Error("point outside bounds accepted")
	}
	if _, ok := g.FromScreen(Pt(4, 3)); !ok {
		t.Error("point on the bounds corner rejected")
	}
}

func TestWithWorkersZero(t *testing.T) {
	o, err := buildOptions(1, []Option{WithWorkers(0)})
	if err != nil || o.workers != 1 {
		t.Errorf("WithWorkers(0) = %d, %v", o.workers, err)
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must with an error should panic")
		}
	}()
	Must(NewHex(0))
}

func TestParseEnums(t *testing.T) {
	kinds := map[string]Kind{"square": Square, " Hex ": Hex, "hexagon": Hex, "tri": Triangle, "TRIANGLE": Triangle}
	for s, want := range kinds {
		if got, err := ParseKind(s); err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseKind("octagon"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(octagon) error = %v", err)
	}

	if o, err := ParseOrientation("pointy-top"); err != nil || o != PointyTop {
		t.Errorf("ParseOrientation = %v, %v", o, err)
	}
	if _, err := ParseOrientation("sideways"); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("ParseOrientation(sideways) error = %v", err)
	}

	if m, err := ParseMetric("Manhattan"); err != nil || m != Manhattan {
		t.Errorf("ParseMetric = %v, %v", m, err)
	}
	if _, err := ParseMetric("euclid"); !errors.Is(err, ErrInvalidMetric) {
		t.Errorf("ParseMetric(euclid) error = %v", err)
	}

	if c, err := ParseCoverage("contained"); err != nil || c != Contained {
		t.Errorf("ParseCoverage = %v, %v", c, err)
	}
	if _, err := ParseCoverage("most"); !errors.Is(err, ErrInvalidCoverage) {
		t.Errorf("ParseCoverage(most) error = %v", err)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Square.String(), "square"},
		{Triangle.String(), "triangle"},
		{Kind(9).String(), "Kind(9)"},
		{PointyTop.String(), "pointy"},
		{Manhattan.String(), "manhattan"},
		{Intersecting.String(), "intersecting"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
