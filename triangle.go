package grid

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/gogpu/grid/internal/lattice"
)

// TriCoord addresses a triangle by column and row. Rows are horizontal
// strips; columns advance by half an edge, alternating between upward and
// downward pointing triangles.
type TriCoord struct {
	Col, Row int
}

// Tri is a convenience function to create a TriCoord.
func Tri(col, row int) TriCoord {
	return TriCoord{Col: col, Row: row}
}

// Up reports whether the triangle points up (its apex is at the top).
// A triangle is up exactly when Col+Row is even.
func (c TriCoord) Up() bool {
	return (c.Col+c.Row)&1 == 0
}

// Lanes returns the triangle's position on the three families of parallel
// lattice lines: a counts horizontal lines, b and c the two slanted
// families. Stepping to an edge neighbor changes exactly one lane by one.
func (c TriCoord) Lanes() (a, b, cc int) {
	a = c.Row
	b = lattice.FloorDiv(c.Col-c.Row, 2)
	cc = a + b
	if !c.Up() {
		cc++
	}
	return a, b, cc
}

// TriFromLanes is the inverse of Lanes. c-a-b must be 0 (up) or 1 (down).
func TriFromLanes(a, b, c int) TriCoord {
	if d := c - a - b; d != 0 && d != 1 {
		panic(fmt.Sprintf("grid: lanes (%d,%d,%d) do not name a triangle", a, b, c))
	}
	return TriCoord{Col: b + c, Row: a}
}

// Add returns the component-wise sum.
func (c TriCoord) Add(o TriCoord) TriCoord {
	return TriCoord{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

// Neg returns the component-wise negation.
func (c TriCoord) Neg() TriCoord {
	return TriCoord{Col: -c.Col, Row: -c.Row}
}

// Compare orders cells by row, then column.
func (c TriCoord) Compare(o TriCoord) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, o.Col)
}

func (c TriCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

var (
	upMoves = NeighborMap[TriCoord]{}.
		Define(NorthEast, Tri(1, 0)).
		Define(NorthWest, Tri(-1, 0)).
		Define(South, Tri(0, -1))
	downMoves = upMoves.Mirror(TriCoord.Neg)
)

// TriGrid is a tiling of equilateral triangles with horizontal rows.
//
// Row r spans heights [r*h, (r+1)*h] above the origin, h = s*√3/2. Cell
// (col, row) occupies x ∈ [col*s/2, col*s/2 + s]. Up triangles have
// neighbors NorthEast, NorthWest and South; down triangles SouthWest,
// SouthEast and North.
type TriGrid struct {
	opts options
	size float64
	h    float64
	m    Matrix // lane space (v, u) to screen
	inv  Matrix
}

// NewTriangle creates a triangle grid with edge length size.
func NewTriangle(size float64, opts ...Option) (*TriGrid, error) {
	o, err := buildOptions(size, opts)
	if err != nil {
		return nil, err
	}
	h := size * sqrt3 / 2
	g := &TriGrid{
		opts: o,
		size: size,
		h:    h,
		m:    Lattice(Pt(size, 0), Pt(size/2, h), o.origin),
	}
	inv, ok := g.m.Invert()
	if !ok {
		return nil, fmt.Errorf("%w: %v does not give an invertible screen transform", ErrInvalidCellSize, size)
	}
	g.inv = inv
	Logger().Debug("grid: new", "kind", Triangle.String(), "size", size)
	return g, nil
}

// Kind returns Triangle.
func (g *TriGrid) Kind() Kind { return Triangle }

// CellSize returns the edge length.
func (g *TriGrid) CellSize() float64 { return g.size }

// RowHeight returns the height of one row of triangles.
func (g *TriGrid) RowHeight() float64 { return g.h }

// Inradius returns the distance from a centroid to an edge.
func (g *TriGrid) Inradius() float64 { return g.h / 3 }

// Circumradius returns the distance from a centroid to a corner.
func (g *TriGrid) Circumradius() float64 { return 2 * g.h / 3 }

func (g *TriGrid) moves(c TriCoord) NeighborMap[TriCoord] {
	if c.Up() {
		return upMoves
	}
	return downMoves
}

// Neighbor returns the triangle sharing an edge with c in direction d.
// Only three directions are defined for any triangle.
func (g *TriGrid) Neighbor(c TriCoord, d Direction) (TriCoord, bool) {
	off, ok := g.moves(c).Offset(d)
	if !ok {
		return TriCoord{}, false
	}
	return c.Add(off), true
}

// Neighbors returns the three edge-adjacent triangles in compass order.
func (g *TriGrid) Neighbors(c TriCoord) []TriCoord {
	out := make([]TriCoord, 0, 3)
	for _, off := range g.moves(c).All() {
		out = append(out, c.Add(off))
	}
	return out
}

// Directions returns {NorthEast, NorthWest, South} for up triangles and
// {SouthWest, SouthEast, North} for down triangles.
func (g *TriGrid) Directions(c TriCoord) DirectionSet {
	return g.moves(c).Directions()
}

// Distance returns the number of edge crossings between a and b: the sum
// of the lane differences.
func (g *TriGrid) Distance(a, b TriCoord) int {
	a0, a1, a2 := a.Lanes()
	b0, b1, b2 := b.Lanes()
	return lattice.Abs(b0-a0) + lattice.Abs(b1-a1) + lattice.Abs(b2-a2)
}

// ToScreen returns the centroid of c.
func (g *TriGrid) ToScreen(c TriCoord) Point {
	a, b, _ := c.Lanes()
	third := 1.0 / 3
	if !c.Up() {
		third = 2.0 / 3
	}
	return g.m.TransformPoint(Pt(float64(b)+third, float64(a)+third))
}

// FromScreen returns the triangle containing p.
func (g *TriGrid) FromScreen(p Point) (TriCoord, bool) {
	if !g.opts.inBounds(p) {
		return TriCoord{}, false
	}
	l := g.inv.TransformPoint(p)
	if !lattice.Representable(l.X) || !lattice.Representable(l.Y) {
		return TriCoord{}, false
	}
	a := lattice.Floor(l.Y)
	b := lattice.Floor(l.X)
	c := min(max(lattice.Floor(l.X+l.Y), a+b), a+b+1)
	return TriCoord{Col: b + c, Row: a}, true
}

// Vertices returns the three corners counter-clockwise, starting at the
// lower left corner of an up triangle or the bottom corner of a down one.
func (g *TriGrid) Vertices(c TriCoord) []Point {
	a, b, _ := c.Lanes()
	fa, fb := float64(a), float64(b)
	if c.Up() {
		return []Point{
			g.m.TransformPoint(Pt(fb, fa)),
			g.m.TransformPoint(Pt(fb+1, fa)),
			g.m.TransformPoint(Pt(fb, fa+1)),
		}
	}
	return []Point{
		g.m.TransformPoint(Pt(fb+1, fa)),
		g.m.TransformPoint(Pt(fb+1, fa+1)),
		g.m.TransformPoint(Pt(fb, fa+1)),
	}
}

// Edges returns the three sides of c keyed by the direction of the
// triangle across each side.
func (g *TriGrid) Edges(c TriCoord) map[Direction]Edge {
	if c.Up() {
		return edgeMap(g.Vertices(c), upEdgeDirs)
	}
	return edgeMap(g.Vertices(c), downEdgeDirs)
}

var (
	upEdgeDirs   = []Direction{South, NorthEast, NorthWest}
	downEdgeDirs = []Direction{SouthEast, North, SouthWest}
)

// laneSteps[axis][positive] holds the step taken from an up and from a
// down triangle to stay on a lane. Positive walks head east along AxisA,
// up and to the right along AxisB and up and to the left along AxisC.
var laneSteps = [3][2]struct{ up, down Direction }{
	{{NorthWest, SouthWest}, {NorthEast, SouthEast}},
	{{South, SouthWest}, {NorthEast, North}},
	{{South, SouthEast}, {NorthWest, North}},
}

// Lane walks the strip of triangles sharing c's lane on axis (see Lanes),
// alternating between up and down triangles.
func (g *TriGrid) Lane(c TriCoord, axis Axis, positive bool) iter.Seq[TriCoord] {
	if axis.Kind() != Triangle {
		panic(foreignAxis(Triangle, axis))
	}
	pos := 0
	if positive {
		pos = 1
	}
	steps := laneSteps[axis-AxisA][pos]
	return walk(c, func(c TriCoord) TriCoord {
		d := steps.down
		if c.Up() {
			d = steps.up
		}
		n, _ := g.Neighbor(c, d)
		return n
	})
}

// Path yields an edge-connected line of triangles from a to b that stays
// as close as possible to the segment between their centroids.
func (g *TriGrid) Path(a, b TriCoord) iter.Seq[TriCoord] {
	return stepPath(g, a, b)
}

// Tessellate yields the triangles covering r row by row, bottom to top,
// and by column within a row.
func (g *TriGrid) Tessellate(r Rect, mode Coverage) iter.Seq[TriCoord] {
	return g.plan(r, mode).seq()
}

// Cells collects Tessellate.
func (g *TriGrid) Cells(r Rect, mode Coverage) []TriCoord {
	return g.plan(r, mode).collect(g.opts.workers)
}

// plan uses rows as bands. Every cell of a row spans the row's full height,
// so in a row that r covers from bottom to top any candidate overlapping r
// horizontally is accepted outright. In the partial first and last rows a
// candidate whose centroid lies inside r is accepted too; the rest get the
// polygon test. Contained mode compares bounding boxes only.
func (g *TriGrid) plan(r Rect, mode Coverage) bandPlan[TriCoord] {
	p := bandPlan[TriCoord]{kind: Triangle, mode: mode}
	r = g.opts.clip(r)
	if r.Empty() {
		return p
	}
	o := g.opts.origin
	x0, x1 := (r.Min.X-o.X)*2/g.size, (r.Max.X-o.X)*2/g.size
	y0, y1 := (r.Min.Y-o.Y)/g.h, (r.Max.Y-o.Y)/g.h

	var row0, row1 int
	if mode == Contained {
		row0, row1 = lattice.Ceil(y0), lattice.Floor(y1)-1
	} else {
		row0, row1 = lattice.Floor(y0), lattice.Ceil(y1)-1
	}
	if row1 < row0 {
		return p
	}

	var col0, col1 int
	if mode == Contained {
		col0, col1 = lattice.Ceil(x0), lattice.Floor(x1)-2
	} else {
		col0, col1 = lattice.Floor(x0)-1, lattice.Ceil(x1)-1
	}

	eps := lattice.TieEpsilon * g.size
	p.count = row1 - row0 + 1
	p.band = func(i int, st *tessStats, yield func(TriCoord) bool) bool {
		row := row0 + i
		full := mode == Contained ||
			(y0 <= float64(row)+lattice.TieEpsilon && y1 >= float64(row+1)-lattice.TieEpsilon)

		for col := col0; col <= col1; col++ {
			c := TriCoord{Col: col, Row: row}
			switch {
			case full, r.ContainsStrict(g.ToScreen(c)):
				st.accept()
			default:
				if !st.check(overlapsRect(g.Vertices(c), r, eps)) {
					continue
				}
			}
			if !yield(c) {
				return false
			}
		}
		return true
	}
	return p
}
