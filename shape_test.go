package grid

import (
	"slices"
	"testing"
)

func TestHashShapeSetOps(t *testing.T) {
	a := NewHashShape(Sq(0, 0), Sq(1, 0), Sq(2, 0))
	b := NewHashShape(Sq(2, 0), Sq(3, 0))

	tests := []struct {
		name string
		got  *HashShape[SquareCoord]
		want []SquareCoord
	}{
		{"union", a.Union(b), []SquareCoord{Sq(0, 0), Sq(1, 0), Sq(2, 0), Sq(3, 0)}},
		{"intersect", a.Intersect(b), []SquareCoord{Sq(2, 0)}},
		{"difference", a.Difference(b), []SquareCoord{Sq(0, 0), Sq(1, 0)}},
	}
	for _, tt := range tests {
		if got := tt.got.Sorted(); !slices.Equal(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
	if a.Len() != 3 || b.Len() != 2 {
		t.Error("set operations modified their operands")
	}

	if !a.Intersect(b).IsSubset(a) || !a.IsSuperset(a.Intersect(b)) {
		t.Error("intersection is not a subset")
	}
	if a.IsSubset(b) || a.IsDisjoint(b) {
		t.Error("a is neither a subset of b nor disjoint from it")
	}
	if !a.Difference(b).IsDisjoint(b) {
		t.Error("difference overlaps the subtracted shape")
	}
	if !a.Equal(a.Clone()) || a.Equal(b) {
		t.Error("Equal")
	}
}

func TestHashShapeMutation(t *testing.T) {
	s := NewHashShape[HexCoord]()
	if !s.Empty() {
		t.Fatal("new shape not empty")
	}
	s.Add(Hx(1, 2), Hx(1, 2), Hx(0, 0))
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	c := s.Clone()
	if !s.Remove(Hx(1, 2)) || s.Remove(Hx(1, 2)) {
		t.Error("Remove should succeed once")
	}
	if !c.Contains(Hx(1, 2)) {
		t.Error("Clone shares storage with the original")
	}
	if got := c.String(); got != "{(0,0) (1,2)}" {
		t.Errorf("String = %q", got)
	}
}

func TestZeroValues(t *testing.T) {
	var s HashShape[TriCoord]
	if s.Contains(Tri(0, 0)) || s.Len() != 0 || s.Remove(Tri(0, 0)) {
		t.Error("zero shape is not empty")
	}
	s.Add(Tri(1, 0))
	if !s.Contains(Tri(1, 0)) || s.Len() != 1 {
		t.Errorf("Add on zero shape: %v", &s)
	}

	var empty HashShape[TriCoord]
	if u := empty.Union(&s); !u.Equal(&s) {
		t.Errorf("zero Union = %v", u)
	}
	c := empty.Clone()
	c.Add(Tri(2, 2))
	if empty.Len() != 0 {
		t.Error("Clone of zero shape shares storage")
	}

	var hc HashContainer[SquareCoord, string]
	if _, ok := hc.Get(Sq(0, 0)); ok || hc.Delete(Sq(0, 0)) {
		t.Error("zero container is not empty")
	}
	hc.Set(Sq(0, 0), "x")
	if v, ok := hc.Get(Sq(0, 0)); !ok || v != "x" {
		t.Errorf("Get after Set on zero container = %q, %v", v, ok)
	}
}

func TestCollectShapeAndTranslate(t *testing.T) {
	g := Must(NewHex(1))
	line := CollectShape(g.Path(Hx(0, 0), Hx(3, 0)))
	if line.Len() != 4 {
		t.Fatalf("collected %d cells", line.Len())
	}
	moved := Translate(line, Hx(0, 2))
	want := NewHashShape(Hx(0, 2), Hx(1, 2), Hx(2, 2), Hx(3, 2))
	if !moved.Equal(want) {
		t.Errorf("Translate = %v, want %v", moved, want)
	}
}

func TestHashContainer(t *testing.T) {
	hc := NewHashContainer[TriCoord, string]()
	hc.Set(Tri(0, 0), "up")
	hc.Set(Tri(1, 0), "down")
	hc.Set(Tri(0, 0), "apex")

	if hc.Len() != 2 {
		t.Errorf("Len = %d", hc.Len())
	}
	if v, ok := hc.Get(Tri(0, 0)); !ok || v != "apex" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	if _, ok := hc.Get(Tri(5, 5)); ok {
		t.Error("Get of missing cell succeeded")
	}
	n := 0
	for c, v := range hc.Items() {
		if got, _ := hc.Get(c); got != v {
			t.Errorf("Items %v = %q, Get = %q", c, v, got)
		}
		n++
	}
	if n != 2 {
		t.Errorf("Items yielded %d pairs", n)
	}
	if !hc.Delete(Tri(1, 0)) || hc.Delete(Tri(1, 0)) || hc.Contains(Tri(1, 0)) {
		t.Error("Delete")
	}
	if !hc.Shape().Equal(NewHashShape(Tri(0, 0))) {
		t.Errorf("Shape = %v", hc.Shape())
	}
}

func TestFillShape(t *testing.T) {
	g := Must(NewSquare(1))
	area := Within(g, Sq(0, 0), 1)
	hc := FillShape(area, 7)
	if hc.Len() != 9 {
		t.Fatalf("Len = %d", hc.Len())
	}
	for c, v := range hc.Items() {
		if v != 7 || !area.Contains(c) {
			t.Errorf("%v = %d", c, v)
		}
	}
}
