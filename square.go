package grid

import (
	"cmp"
	"fmt"
	"iter"
	"math"

	"github.com/gogpu/grid/compass"
	"github.com/gogpu/grid/internal/lattice"
)

// SquareCoord addresses a square cell by column X and row Y. Y grows
// upward on screen.
type SquareCoord struct {
	X, Y int
}

// Sq is a convenience function to create a SquareCoord.
func Sq(x, y int) SquareCoord {
	return SquareCoord{X: x, Y: y}
}

// Add returns the component-wise sum.
func (c SquareCoord) Add(o SquareCoord) SquareCoord {
	return SquareCoord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference.
func (c SquareCoord) Sub(o SquareCoord) SquareCoord {
	return SquareCoord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Neg returns the point reflection of c through (0,0).
func (c SquareCoord) Neg() SquareCoord {
	return SquareCoord{X: -c.X, Y: -c.Y}
}

// Compare orders cells row by row, bottom to top, then by column.
func (c SquareCoord) Compare(o SquareCoord) int {
	if r := cmp.Compare(c.Y, o.Y); r != 0 {
		return r
	}
	return cmp.Compare(c.X, o.X)
}

func (c SquareCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

var (
	kingMoves = fromDeltas(compass.All, func(dx, dy int) SquareCoord { return Sq(dx, dy) })
	rookMoves = fromDeltas(compass.Cardinals, func(dx, dy int) SquareCoord { return Sq(dx, dy) })
)

// SquareGrid is a tiling of axis-aligned squares.
//
// Cell (x, y) covers [x*s, (x+1)*s] × [y*s, (y+1)*s] relative to the origin,
// where s is the cell size.
type SquareGrid struct {
	opts  options
	size  float64
	moves NeighborMap[SquareCoord]
	m     Matrix
	inv   Matrix
}

// NewSquare creates a square grid with edge length size.
func NewSquare(size float64, opts ...Option) (*SquareGrid, error) {
	o, err := buildOptions(size, opts)
	if err != nil {
		return nil, err
	}
	g := &SquareGrid{
		opts:  o,
		size:  size,
		moves: kingMoves,
		m:     Lattice(Pt(size, 0), Pt(0, size), o.origin),
	}
	if o.metric == Manhattan {
		g.moves = rookMoves
	}
	inv, ok := g.m.Invert()
	if !ok {
		return nil, fmt.Errorf("%w: %v does not give an invertible screen transform", ErrInvalidCellSize, size)
	}
	g.inv = inv
	Logger().Debug("grid: new", "kind", Square.String(), "size", size, "metric", o.metric.String())
	return g, nil
}

// Kind returns Square.
func (g *SquareGrid) Kind() Kind { return Square }

// CellSize returns the edge length.
func (g *SquareGrid) CellSize() float64 { return g.size }

// Metric returns the distance policy chosen at construction.
func (g *SquareGrid) Metric() Metric { return g.opts.metric }

// Inradius returns half the edge length.
func (g *SquareGrid) Inradius() float64 { return g.size / 2 }

// Circumradius returns the distance from a center to a corner.
func (g *SquareGrid) Circumradius() float64 { return g.size * math.Sqrt2 / 2 }

// Neighbor returns the cell one step from c in direction d. Ordinal
// directions are undefined under the Manhattan metric.
func (g *SquareGrid) Neighbor(c SquareCoord, d Direction) (SquareCoord, bool) {
	off, ok := g.moves.Offset(d)
	if !ok {
		return SquareCoord{}, false
	}
	return c.Add(off), true
}

// Neighbors returns the adjacent cells in compass order.
func (g *SquareGrid) Neighbors(c SquareCoord) []SquareCoord {
	out := make([]SquareCoord, 0, g.moves.Len())
	for _, off := range g.moves.All() {
		out = append(out, c.Add(off))
	}
	return out
}

// Directions returns the directions defined for every square cell.
func (g *SquareGrid) Directions(SquareCoord) DirectionSet {
	return g.moves.Directions()
}

// Distance returns max(|dx|,|dy|) under Chebyshev and |dx|+|dy| under
// Manhattan.
func (g *SquareGrid) Distance(a, b SquareCoord) int {
	dx := lattice.Abs(b.X - a.X)
	dy := lattice.Abs(b.Y - a.Y)
	if g.opts.metric == Manhattan {
		return dx + dy
	}
	return max(dx, dy)
}

// ToScreen returns the center of c.
func (g *SquareGrid) ToScreen(c SquareCoord) Point {
	return g.m.TransformPoint(Pt(float64(c.X)+0.5, float64(c.Y)+0.5))
}

// FromScreen returns the cell containing p.
func (g *SquareGrid) FromScreen(p Point) (SquareCoord, bool) {
	if !g.opts.inBounds(p) {
		return SquareCoord{}, false
	}
	l := g.inv.TransformPoint(p)
	if !lattice.Representable(l.X) || !lattice.Representable(l.Y) {
		return SquareCoord{}, false
	}
	return SquareCoord{X: lattice.Floor(l.X), Y: lattice.Floor(l.Y)}, true
}

// Vertices returns the four corners counter-clockwise from the lower left.
func (g *SquareGrid) Vertices(c SquareCoord) []Point {
	x, y := float64(c.X), float64(c.Y)
	return []Point{
		g.m.TransformPoint(Pt(x, y)),
		g.m.TransformPoint(Pt(x+1, y)),
		g.m.TransformPoint(Pt(x+1, y+1)),
		g.m.TransformPoint(Pt(x, y+1)),
	}
}

// Edges returns the four sides of c. Diagonal neighbors share only a
// corner, so the keys are always the cardinal directions.
func (g *SquareGrid) Edges(c SquareCoord) map[Direction]Edge {
	return edgeMap(g.Vertices(c), squareEdgeDirs)
}

var squareEdgeDirs = []Direction{South, East, North, West}

// Lane walks the column (AxisX) or row (AxisY) through c. positive walks
// north along a column and east along a row.
func (g *SquareGrid) Lane(c SquareCoord, axis Axis, positive bool) iter.Seq[SquareCoord] {
	var step SquareCoord
	switch axis {
	case AxisX:
		step = Sq(0, 1)
	case AxisY:
		step = Sq(1, 0)
	default:
		panic(foreignAxis(Square, axis))
	}
	if !positive {
		step = step.Neg()
	}
	return walk(c, func(c SquareCoord) SquareCoord { return c.Add(step) })
}

// Path yields a straight line of cells from a to b.
//
// Under Chebyshev each step advances the longer axis by one and the shorter
// axis follows the center-to-center segment, rounded in exact integer
// arithmetic. Under Manhattan the line is traced one edge at a time.
func (g *SquareGrid) Path(a, b SquareCoord) iter.Seq[SquareCoord] {
	if g.opts.metric == Manhattan {
		return stepPath(g, a, b)
	}
	return func(yield func(SquareCoord) bool) {
		dx, dy := b.X-a.X, b.Y-a.Y
		n := max(lattice.Abs(dx), lattice.Abs(dy))
		if n == 0 {
			yield(a)
			return
		}
		for k := range n + 1 {
			c := SquareCoord{
				X: a.X + lattice.FloorDiv(2*dx*k+n, 2*n),
				Y: a.Y + lattice.FloorDiv(2*dy*k+n, 2*n),
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Tessellate yields the cells covering r row by row, bottom to top.
// Square bands are exact index ranges; no cell needs a geometric test.
func (g *SquareGrid) Tessellate(r Rect, mode Coverage) iter.Seq[SquareCoord] {
	return g.plan(r, mode).seq()
}

// Cells collects Tessellate.
func (g *SquareGrid) Cells(r Rect, mode Coverage) []SquareCoord {
	return g.plan(r, mode).collect(g.opts.workers)
}

func (g *SquareGrid) plan(r Rect, mode Coverage) bandPlan[SquareCoord] {
	p := bandPlan[SquareCoord]{kind: Square, mode: mode}
	r = g.opts.clip(r)
	if r.Empty() {
		return p
	}
	lo := g.inv.TransformPoint(r.Min)
	hi := g.inv.TransformPoint(r.Max)

	var x0, x1, y0, y1 int
	if mode == Contained {
		x0, x1 = lattice.Ceil(lo.X), lattice.Floor(hi.X)-1
		y0, y1 = lattice.Ceil(lo.Y), lattice.Floor(hi.Y)-1
	} else {
		x0, x1 = lattice.Floor(lo.X), lattice.Ceil(hi.X)-1
		y0, y1 = lattice.Floor(lo.Y), lattice.Ceil(hi.Y)-1
	}
	if x1 < x0 || y1 < y0 {
		return p
	}

	p.count = y1 - y0 + 1
	p.band = func(i int, st *tessStats, yield func(SquareCoord) bool) bool {
		y := y0 + i
		for x := x0; x <= x1; x++ {
			st.accept()
			if !yield(SquareCoord{X: x, Y: y}) {
				return false
			}
		}
		return true
	}
	return p
}
