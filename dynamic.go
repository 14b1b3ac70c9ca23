package grid

import (
	"cmp"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Coord is a cell address of any tiling, tagged with its Kind. It lets a
// program pick the tiling at run time through Grid.
//
// The zero Coord is square cell (0,0).
type Coord struct {
	kind Kind
	a, b int
}

// SquareCell wraps a square address.
func SquareCell(c SquareCoord) Coord { return Coord{kind: Square, a: c.X, b: c.Y} }

// HexCell wraps a hex address.
func HexCell(c HexCoord) Coord { return Coord{kind: Hex, a: c.Q, b: c.R} }

// TriCell wraps a triangle address.
func TriCell(c TriCoord) Coord { return Coord{kind: Triangle, a: c.Col, b: c.Row} }

// Kind reports which tiling c belongs to.
func (c Coord) Kind() Kind { return c.kind }

// Pair returns the two integer components in the tiling's own order:
// (X, Y), (Q, R) or (Col, Row).
func (c Coord) Pair() (int, int) { return c.a, c.b }

// AsSquare unwraps a square address.
func (c Coord) AsSquare() (SquareCoord, bool) {
	return SquareCoord{X: c.a, Y: c.b}, c.kind == Square
}

// AsHex unwraps a hex address.
func (c Coord) AsHex() (HexCoord, bool) {
	return HexCoord{Q: c.a, R: c.b}, c.kind == Hex
}

// AsTri unwraps a triangle address.
func (c Coord) AsTri() (TriCoord, bool) {
	return TriCoord{Col: c.a, Row: c.b}, c.kind == Triangle
}

// Compare orders by kind, then with the ordering of the wrapped address.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.kind, o.kind); r != 0 {
		return r
	}
	switch c.kind {
	case Hex:
		h, _ := c.AsHex()
		oh, _ := o.AsHex()
		return h.Compare(oh)
	case Triangle:
		t, _ := c.AsTri()
		ot, _ := o.AsTri()
		return t.Compare(ot)
	}
	s, _ := c.AsSquare()
	os, _ := o.AsSquare()
	return s.Compare(os)
}

// String formats c as "(a,b)", matching the wrapped address.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.a, c.b)
}

// ParseCoord parses "a,b" or "(a,b)" as an address of the given kind.
func ParseCoord(kind Kind, s string) (Coord, error) {
	if int(kind) >= len(kindNames) {
		return Coord{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	as, bs, ok := strings.Cut(t, ",")
	if !ok {
		return Coord{}, fmt.Errorf("grid: coordinate %q: want \"a,b\"", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(as))
	if err != nil {
		return Coord{}, fmt.Errorf("grid: coordinate %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(bs))
	if err != nil {
		return Coord{}, fmt.Errorf("grid: coordinate %q: %w", s, err)
	}
	return Coord{kind: kind, a: a, b: b}, nil
}

// Grid is a tiling chosen at run time. Passing it a Coord of another kind
// panics.
type Grid = Topology[Coord]

// New creates a grid of the given kind. Options that do not apply to kind
// are ignored.
func New(kind Kind, size float64, opts ...Option) (Grid, error) {
	switch kind {
	case Square:
		g, err := NewSquare(size, opts...)
		if err != nil {
			return nil, err
		}
		return Dynamic[SquareCoord](g, SquareCell, Coord.AsSquare), nil
	case Hex:
		g, err := NewHex(size, opts...)
		if err != nil {
			return nil, err
		}
		return Dynamic[HexCoord](g, HexCell, Coord.AsHex), nil
	case Triangle:
		g, err := NewTriangle(size, opts...)
		if err != nil {
			return nil, err
		}
		return Dynamic[TriCoord](g, TriCell, Coord.AsTri), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
}

// Dynamic adapts a typed topology to Grid. wrap and unwrap convert between
// the typed address and Coord; unwrap reports false for a Coord of another
// kind.
func Dynamic[C Cell[C]](t Topology[C], wrap func(C) Coord, unwrap func(Coord) (C, bool)) Grid {
	return &dynamicGrid[C]{t: t, wrap: wrap, unwrap: unwrap}
}

type dynamicGrid[C Cell[C]] struct {
	t      Topology[C]
	wrap   func(C) Coord
	unwrap func(Coord) (C, bool)
}

func (d *dynamicGrid[C]) in(c Coord) C {
	v, ok := d.unwrap(c)
	if !ok {
		panic(fmt.Sprintf("grid: %s coordinate %v passed to %s grid", c.kind, c, d.t.Kind()))
	}
	return v
}

func (d *dynamicGrid[C]) out(cells []C) []Coord {
	res := make([]Coord, len(cells))
	for i, c := range cells {
		res[i] = d.wrap(c)
	}
	return res
}

func (d *dynamicGrid[C]) seq(s iter.Seq[C]) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range s {
			if !yield(d.wrap(c)) {
				return
			}
		}
	}
}

func (d *dynamicGrid[C]) Kind() Kind { return d.t.Kind() }

func (d *dynamicGrid[C]) CellSize() float64 { return d.t.CellSize() }

func (d *dynamicGrid[C]) Neighbor(c Coord, dir Direction) (Coord, bool) {
	n, ok := d.t.Neighbor(d.in(c), dir)
	if !ok {
		return Coord{}, false
	}
	return d.wrap(n), true
}

func (d *dynamicGrid[C]) Neighbors(c Coord) []Coord {
	return d.out(d.t.Neighbors(d.in(c)))
}

func (d *dynamicGrid[C]) Directions(c Coord) DirectionSet {
	return d.t.Directions(d.in(c))
}

func (d *dynamicGrid[C]) Distance(a, b Coord) int {
	return d.t.Distance(d.in(a), d.in(b))
}

func (d *dynamicGrid[C]) ToScreen(c Coord) Point {
	return d.t.ToScreen(d.in(c))
}

func (d *dynamicGrid[C]) FromScreen(p Point) (Coord, bool) {
	c, ok := d.t.FromScreen(p)
	if !ok {
		return Coord{}, false
	}
	return d.wrap(c), true
}

func (d *dynamicGrid[C]) Vertices(c Coord) []Point {
	return d.t.Vertices(d.in(c))
}

func (d *dynamicGrid[C]) Edges(c Coord) map[Direction]Edge {
	return d.t.Edges(d.in(c))
}

func (d *dynamicGrid[C]) Lane(c Coord, axis Axis, positive bool) iter.Seq[Coord] {
	return d.seq(d.t.Lane(d.in(c), axis, positive))
}

func (d *dynamicGrid[C]) Path(a, b Coord) iter.Seq[Coord] {
	return d.seq(d.t.Path(d.in(a), d.in(b)))
}

func (d *dynamicGrid[C]) Tessellate(r Rect, mode Coverage) iter.Seq[Coord] {
	return d.seq(d.t.Tessellate(r, mode))
}

func (d *dynamicGrid[C]) Cells(r Rect, mode Coverage) []Coord {
	return d.out(d.t.Cells(r, mode))
}
