package grid

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/grid/compass"
)

// This file holds checks that every topology must pass. The per-topology
// test files run them over their own grids.

func checkRoundTrip[C Cell[C]](t *testing.T, g Topology[C], center C, radius int) {
	t.Helper()
	for c := range Within(g, center, radius).All() {
		got, ok := g.FromScreen(g.ToScreen(c))
		if !ok || got != c {
			t.Errorf("FromScreen(ToScreen(%v)) = %v, %v", c, got, ok)
		}
		// Points pulled slightly inward from each corner stay in the cell.
		p := g.ToScreen(c)
		for _, v := range g.Vertices(c) {
			in := v.Lerp(p, 0.01)
			if got, _ := g.FromScreen(in); got != c {
				t.Errorf("point %v near corner %v of %v maps to %v", in, v, c, got)
			}
		}
	}
}

func checkNeighbors[C Cell[C]](t *testing.T, g Topology[C], center C, radius int) {
	t.Helper()
	for c := range Within(g, center, radius).All() {
		dirs := g.Directions(c)
		ns := g.Neighbors(c)
		if len(ns) != dirs.Len() {
			t.Fatalf("%v: %d neighbors for %d directions", c, len(ns), dirs.Len())
		}
		i := 0
		for d := range dirs.All() {
			n, ok := g.Neighbor(c, d)
			if !ok {
				t.Fatalf("%v: Neighbor(%v) undefined but listed in Directions", c, d)
			}
			if n != ns[i] {
				t.Errorf("%v: Neighbors()[%d] = %v, Neighbor(%v) = %v", c, i, ns[i], d, n)
			}
			i++
			if g.Distance(c, n) != 1 {
				t.Errorf("Distance(%v, %v) = %d, want 1", c, n, g.Distance(c, n))
			}
			back, ok := g.Neighbor(n, d.Opposite())
			if !ok || back != c {
				t.Errorf("Neighbor(Neighbor(%v, %v), %v) = %v, %v", c, d, d.Opposite(), back, ok)
			}
		}
		for d := range compass.All.Difference(dirs).All() {
			if _, ok := g.Neighbor(c, d); ok {
				t.Errorf("%v: Neighbor(%v) defined but not in Directions", c, d)
			}
		}
	}
}

func checkPath[C Cell[C]](t *testing.T, g Topology[C], a, b C) []C {
	t.Helper()
	cells := slices.Collect(g.Path(a, b))
	n := g.Distance(a, b)
	if len(cells) != n+1 {
		t.Fatalf("Path(%v, %v) has %d cells, want %d: %v", a, b, len(cells), n+1, cells)
	}
	if cells[0] != a || cells[n] != b {
		t.Fatalf("Path(%v, %v) = %v: wrong endpoints", a, b, cells)
	}
	for i, c := range cells {
		if d := g.Distance(c, b); d != n-i {
			t.Fatalf("Path(%v, %v)[%d] = %v at distance %d from end, want %d", a, b, i, c, d, n-i)
		}
		if i > 0 && g.Distance(cells[i-1], c) != 1 {
			t.Fatalf("Path(%v, %v): %v and %v not adjacent", a, b, cells[i-1], c)
		}
	}
	if again := slices.Collect(g.Path(a, b)); !slices.Equal(again, cells) {
		t.Errorf("Path(%v, %v) not restartable: %v then %v", a, b, cells, again)
	}
	return cells
}

// checkEdges verifies that each side of c lies halfway between c and the
// cell across it and is shared by that cell.
func checkEdges[C Cell[C]](t *testing.T, g Topology[C], center C, radius int) {
	t.Helper()
	for c := range Within(g, center, radius).All() {
		edges := g.Edges(c)
		if len(edges) != len(g.Vertices(c)) {
			t.Errorf("%v has %d edges and %d vertices", c, len(edges), len(g.Vertices(c)))
		}
		for d, e := range edges {
			n, ok := g.Neighbor(c, d)
			if !ok {
				t.Errorf("edge %v of %v has no neighbor", d, c)
				continue
			}
			if mid := g.ToScreen(c).Lerp(g.ToScreen(n), 0.5); !pointsNear(e.Midpoint(), mid) {
				t.Errorf("edge %v of %v centered at %v, want %v", d, c, e.Midpoint(), mid)
			}
			if math.Abs(e.Length()-g.CellSize()) > 1e-9*g.CellSize() {
				t.Errorf("edge %v of %v has length %v", d, c, e.Length())
			}
			vs := g.Vertices(n)
			for _, p := range []Point{e.A, e.B} {
				if !slices.ContainsFunc(vs, func(v Point) bool { return pointsNear(v, p) }) {
					t.Errorf("corner %v of edge %v of %v is not a corner of %v", p, d, c, n)
				}
			}
		}
	}
}

// checkLanes walks every axis both ways from c: the i-th cell is i steps
// from c and each cell touches the one before it.
func checkLanes[C Cell[C]](t *testing.T, g Topology[C], c C) {
	t.Helper()
	for _, axis := range g.Kind().Axes() {
		for _, positive := range []bool{false, true} {
			i := 0
			prev := c
			for n := range g.Lane(c, axis, positive) {
				if d := g.Distance(c, n); d != i {
					t.Errorf("Lane(%v, %v, %v)[%d] = %v at distance %d", c, axis, positive, i, n, d)
				}
				if i > 0 && g.Distance(prev, n) != 1 {
					t.Errorf("Lane(%v, %v, %v) jumps from %v to %v", c, axis, positive, prev, n)
				}
				prev = n
				if i++; i == 9 {
					break
				}
			}
		}
	}
}

// checkTessellation compares the banded tessellation with a brute force
// test of every cell near r.
func checkTessellation[C Cell[C]](t *testing.T, g Topology[C], r Rect, mode Coverage, radius int) {
	t.Helper()
	got := g.Cells(r, mode)

	seen := NewHashShape[C]()
	for _, c := range got {
		if seen.Contains(c) {
			t.Fatalf("Cells(%v, %v): duplicate %v", r, mode, c)
		}
		seen.Add(c)
	}

	center, _ := g.FromScreen(r.Min.Lerp(r.Max, 0.5))
	eps := 1e-9 * g.CellSize()
	want := NewHashShape[C]()
	for c := range Within(g, center, radius).All() {
		vs := g.Vertices(c)
		switch mode {
		case Intersecting:
			if overlapsRect(vs, r, eps) {
				want.Add(c)
			}
		case Contained:
			inside := true
			for _, v := range vs {
				if v.X < r.Min.X-eps || v.X > r.Max.X+eps || v.Y < r.Min.Y-eps || v.Y > r.Max.Y+eps {
					inside = false
				}
			}
			if inside {
				want.Add(c)
			}
		}
	}
	if !seen.Equal(want) {
		t.Errorf("Cells(%v, %v):\n missing %v\n extra   %v", r, mode,
			want.Difference(seen), seen.Difference(want))
	}

	if seq := slices.Collect(g.Tessellate(r, mode)); !slices.Equal(seq, got) {
		t.Errorf("Tessellate and Cells disagree on order for %v", r)
	}
}

// checkParallelCells verifies that spreading bands over workers does not
// change the result or its order.
func checkParallelCells[C Cell[C]](t *testing.T, seq, par Topology[C], r Rect) {
	t.Helper()
	for _, mode := range []Coverage{Intersecting, Contained} {
		a, b := seq.Cells(r, mode), par.Cells(r, mode)
		if !slices.Equal(a, b) {
			t.Errorf("%v %v: sequential %d cells, parallel %d cells, or order differs", r, mode, len(a), len(b))
		}
	}
}

// testRects avoid lattice-aligned edges so brute force and banded results
// do not depend on boundary rounding.
var testRects = []Rect{
	R(0.13, 0.27, 4.41, 3.19),
	R(-3.77, -2.05, 2.61, 5.93),
	R(1.01, 1.03, 1.37, 1.11),
	R(-0.31, 0.07, 0.29, 9.83),
	R(-7.19, -0.47, 6.73, 0.53),
}
