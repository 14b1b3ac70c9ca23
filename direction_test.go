package grid

import "testing"

func TestNeighborMap(t *testing.T) {
	m := NeighborMap[SquareCoord]{}.
		Define(East, Sq(1, 0)).
		Define(North, Sq(0, 1)).
		Define(Direction(42), Sq(9, 9))

	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (invalid direction ignored)", m.Len())
	}
	if off, ok := m.Offset(North); !ok || off != Sq(0, 1) {
		t.Errorf("Offset(North) = %v, %v", off, ok)
	}
	if _, ok := m.Offset(West); ok {
		t.Error("Offset(West) defined")
	}

	var order []Direction
	for d := range m.All() {
		order = append(order, d)
	}
	if len(order) != 2 || order[0] != East || order[1] != North {
		t.Errorf("All order = %v", order)
	}

	// Define returns a copy.
	m2 := m.Define(West, Sq(-1, 0))
	if m.Len() != 2 || m2.Len() != 3 {
		t.Errorf("Define mutated its receiver: %d, %d", m.Len(), m2.Len())
	}
}

func TestNeighborMapMirror(t *testing.T) {
	down := upMoves.Mirror(TriCoord.Neg)
	tests := []struct {
		d    Direction
		want TriCoord
	}{
		{SouthWest, Tri(-1, 0)},
		{SouthEast, Tri(1, 0)},
		{North, Tri(0, 1)},
	}
	for _, tt := range tests {
		if off, ok := down.Offset(tt.d); !ok || off != tt.want {
			t.Errorf("mirrored Offset(%v) = %v, %v, want %v", tt.d, off, ok, tt.want)
		}
	}
	if down.Len() != 3 {
		t.Errorf("mirrored Len = %d", down.Len())
	}
}

func TestFromDeltas(t *testing.T) {
	m := fromDeltas(DirectionSet(0).With(NorthWest).With(South), Sq)
	if off, _ := m.Offset(NorthWest); off != Sq(-1, 1) {
		t.Errorf("NorthWest = %v", off)
	}
	if off, _ := m.Offset(South); off != Sq(0, -1) {
		t.Errorf("South = %v", off)
	}
}

func TestParseDirection(t *testing.T) {
	for s, want := range map[string]Direction{"NE": NorthEast, "west": West, "s": South} {
		if got, err := ParseDirection(s); err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(up) should fail")
	}
}
