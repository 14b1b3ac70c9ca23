package grid

import (
	"cmp"
	"fmt"
	"iter"
	"math"

	"github.com/gogpu/grid/internal/lattice"
)

const sqrt3 = 1.7320508075688772

// HexCoord is an axial hex address. The implied third cube coordinate is
// S = -Q-R.
type HexCoord struct {
	Q, R int
}

// Hx is a convenience function to create a HexCoord.
func Hx(q, r int) HexCoord {
	return HexCoord{Q: q, R: r}
}

// HexFromCube builds a HexCoord from cube coordinates. It panics if
// q+r+s != 0.
func HexFromCube(q, r, s int) HexCoord {
	if q+r+s != 0 {
		panic(fmt.Sprintf("grid: cube coordinate (%d,%d,%d) does not sum to zero", q, r, s))
	}
	return HexCoord{Q: q, R: r}
}

// S returns the third cube coordinate.
func (c HexCoord) S() int {
	return -c.Q - c.R
}

// Add returns the component-wise sum.
func (c HexCoord) Add(o HexCoord) HexCoord {
	return HexCoord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Sub returns the component-wise difference.
func (c HexCoord) Sub(o HexCoord) HexCoord {
	return HexCoord{Q: c.Q - o.Q, R: c.R - o.R}
}

// Scale multiplies both components by k.
func (c HexCoord) Scale(k int) HexCoord {
	return HexCoord{Q: c.Q * k, R: c.R * k}
}

// Neg returns the point reflection of c through (0,0).
func (c HexCoord) Neg() HexCoord {
	return HexCoord{Q: -c.Q, R: -c.R}
}

// Compare orders cells by Q, then R.
func (c HexCoord) Compare(o HexCoord) int {
	if r := cmp.Compare(c.Q, o.Q); r != 0 {
		return r
	}
	return cmp.Compare(c.R, o.R)
}

func (c HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

var (
	flatMoves = NeighborMap[HexCoord]{}.
			Define(North, Hx(0, 1)).
			Define(NorthEast, Hx(1, 0)).
			Define(SouthEast, Hx(1, -1)).
			Define(South, Hx(0, -1)).
			Define(SouthWest, Hx(-1, 0)).
			Define(NorthWest, Hx(-1, 1))

	pointyMoves = NeighborMap[HexCoord]{}.
			Define(East, Hx(1, 0)).
			Define(NorthEast, Hx(0, 1)).
			Define(NorthWest, Hx(-1, 1)).
			Define(West, Hx(-1, 0)).
			Define(SouthWest, Hx(0, -1)).
			Define(SouthEast, Hx(1, -1))
)

// Vertex neighbors lie across a corner, two steps away.
var (
	flatVertexMoves = NeighborMap[HexCoord]{}.
			Define(East, Hx(2, -1)).
			Define(NorthEast, Hx(1, 1)).
			Define(NorthWest, Hx(-1, 2)).
			Define(West, Hx(-2, 1)).
			Define(SouthWest, Hx(-1, -1)).
			Define(SouthEast, Hx(1, -2))

	pointyVertexMoves = NeighborMap[HexCoord]{}.
			Define(NorthEast, Hx(1, 1)).
			Define(North, Hx(-1, 2)).
			Define(NorthWest, Hx(-2, 1)).
			Define(SouthWest, Hx(-1, -1)).
			Define(South, Hx(1, -2)).
			Define(SouthEast, Hx(2, -1))

	flatEdgeDirs   = []Direction{NorthEast, North, NorthWest, SouthWest, South, SouthEast}
	pointyEdgeDirs = []Direction{NorthEast, NorthWest, West, SouthWest, SouthEast, East}
)

// HexGrid is a tiling of regular hexagons.
//
// The cell size is the edge length, which for a hexagon equals the
// circumradius. Flat-top grids have straight columns and no East or West
// neighbors; pointy-top grids have straight rows and no North or South
// neighbors.
type HexGrid struct {
	opts   options
	size   float64
	moves  NeighborMap[HexCoord]
	vmoves NeighborMap[HexCoord]
	m      Matrix
	inv    Matrix
}

// NewHex creates a hex grid with edge length size. Hexes are flat-top
// unless WithOrientation(PointyTop) is given.
func NewHex(size float64, opts ...Option) (*HexGrid, error) {
	o, err := buildOptions(size, opts)
	if err != nil {
		return nil, err
	}
	g := &HexGrid{opts: o, size: size}
	if o.orientation == PointyTop {
		g.moves, g.vmoves = pointyMoves, pointyVertexMoves
		g.m = Lattice(Pt(sqrt3*size, 0), Pt(sqrt3*size/2, 1.5*size), o.origin)
	} else {
		g.moves, g.vmoves = flatMoves, flatVertexMoves
		g.m = Lattice(Pt(1.5*size, sqrt3*size/2), Pt(0, sqrt3*size), o.origin)
	}
	inv, ok := g.m.Invert()
	if !ok {
		return nil, fmt.Errorf("%w: %v does not give an invertible screen transform", ErrInvalidCellSize, size)
	}
	g.inv = inv
	Logger().Debug("grid: new", "kind", Hex.String(), "size", size, "orientation", o.orientation.String())
	return g, nil
}

// Kind returns Hex.
func (g *HexGrid) Kind() Kind { return Hex }

// CellSize returns the edge length.
func (g *HexGrid) CellSize() float64 { return g.size }

// Orientation returns the orientation chosen at construction.
func (g *HexGrid) Orientation() Orientation { return g.opts.orientation }

// Inradius returns the distance from a center to an edge midpoint.
func (g *HexGrid) Inradius() float64 { return g.size * sqrt3 / 2 }

// Circumradius returns the distance from a center to a corner.
func (g *HexGrid) Circumradius() float64 { return g.size }

// Neighbor returns the cell sharing an edge with c in direction d.
func (g *HexGrid) Neighbor(c HexCoord, d Direction) (HexCoord, bool) {
	off, ok := g.moves.Offset(d)
	if !ok {
		return HexCoord{}, false
	}
	return c.Add(off), true
}

// Neighbors returns the six adjacent cells in compass order.
func (g *HexGrid) Neighbors(c HexCoord) []HexCoord {
	out := make([]HexCoord, 0, 6)
	for _, off := range g.moves.All() {
		out = append(out, c.Add(off))
	}
	return out
}

// Directions returns the six directions of the grid's orientation.
func (g *HexGrid) Directions(HexCoord) DirectionSet {
	return g.moves.Directions()
}

// VertexNeighbor returns the hex that touches c only at the corner in
// direction d. Flat-top grids have no North or South vertex neighbor;
// pointy-top grids have no East or West one.
func (g *HexGrid) VertexNeighbor(c HexCoord, d Direction) (HexCoord, bool) {
	off, ok := g.vmoves.Offset(d)
	if !ok {
		return HexCoord{}, false
	}
	return c.Add(off), true
}

// VertexNeighbors returns the six corner-adjacent hexes in compass order.
func (g *HexGrid) VertexNeighbors(c HexCoord) []HexCoord {
	out := make([]HexCoord, 0, 6)
	for _, off := range g.vmoves.All() {
		out = append(out, c.Add(off))
	}
	return out
}

// VertexDirections returns the six directions VertexNeighbor accepts.
func (g *HexGrid) VertexDirections() DirectionSet {
	return g.vmoves.Directions()
}

// Distance returns the hex step count (|dq| + |dr| + |ds|) / 2.
func (g *HexGrid) Distance(a, b HexCoord) int {
	d := b.Sub(a)
	return (lattice.Abs(d.Q) + lattice.Abs(d.R) + lattice.Abs(d.S())) / 2
}

// ToScreen returns the center of c.
func (g *HexGrid) ToScreen(c HexCoord) Point {
	return g.m.TransformPoint(Pt(float64(c.Q), float64(c.R)))
}

// FromScreen returns the hex containing p.
func (g *HexGrid) FromScreen(p Point) (HexCoord, bool) {
	if !g.opts.inBounds(p) {
		return HexCoord{}, false
	}
	l := g.inv.TransformPoint(p)
	if !lattice.Representable(l.X) || !lattice.Representable(l.Y) {
		return HexCoord{}, false
	}
	return cubeRound(l.X, l.Y), true
}

// Vertices returns the six corners counter-clockwise, starting from the
// east-most corner (flat-top) or the one at 30° (pointy-top).
func (g *HexGrid) Vertices(c HexCoord) []Point {
	start := 0.0
	if g.opts.orientation == PointyTop {
		start = math.Pi / 6
	}
	return hexagon(g.ToScreen(c), g.size, start)
}

// Edges returns the six sides of c keyed by edge direction.
func (g *HexGrid) Edges(c HexCoord) map[Direction]Edge {
	if g.opts.orientation == PointyTop {
		return edgeMap(g.Vertices(c), pointyEdgeDirs)
	}
	return edgeMap(g.Vertices(c), flatEdgeDirs)
}

// Lane walks the line of hexes sharing c's Q, R or S. Along AxisQ the walk
// changes R, along AxisR and AxisS it changes Q; positive makes that
// coordinate grow.
func (g *HexGrid) Lane(c HexCoord, axis Axis, positive bool) iter.Seq[HexCoord] {
	var step HexCoord
	switch axis {
	case AxisQ:
		step = Hx(0, 1)
	case AxisR:
		step = Hx(1, 0)
	case AxisS:
		step = Hx(1, -1)
	default:
		panic(foreignAxis(Hex, axis))
	}
	if !positive {
		step = step.Neg()
	}
	return walk(c, func(c HexCoord) HexCoord { return c.Add(step) })
}

// Path yields the hexes crossed by the segment between the centers of a
// and b.
//
// The segment is sampled in fractional axial space and each sample is cube
// rounded. Both ends are nudged by a fixed sub-cell offset so that samples
// never land exactly on an edge shared by two hexes.
func (g *HexGrid) Path(a, b HexCoord) iter.Seq[HexCoord] {
	return func(yield func(HexCoord) bool) {
		n := g.Distance(a, b)
		if n == 0 {
			yield(a)
			return
		}
		const nq, nr = 1e-6, 2e-6 // s gets -3e-6
		aq, ar := float64(a.Q)+nq, float64(a.R)+nr
		bq, br := float64(b.Q)+nq, float64(b.R)+nr

		prev, started := HexCoord{}, false
		for k := range n + 1 {
			t := float64(k) / float64(n)
			c := cubeRound(aq+(bq-aq)*t, ar+(br-ar)*t)
			if started && c == prev {
				continue
			}
			prev, started = c, true
			if !yield(c) {
				return
			}
		}
	}
}

// Tessellate yields the hexes covering r. Flat-top grids go column by
// column (Q, then R); pointy-top grids go row by row (R, then Q).
func (g *HexGrid) Tessellate(r Rect, mode Coverage) iter.Seq[HexCoord] {
	return g.plan(r, mode).seq()
}

// Cells collects Tessellate.
func (g *HexGrid) Cells(r Rect, mode Coverage) []HexCoord {
	return g.plan(r, mode).collect(g.opts.workers)
}

// plan works in a flat-top frame centered on hex (0,0). A pointy-top grid
// is the same tiling mirrored across y = x, with Q and R exchanged.
//
// In that frame column q is centered at x = 1.5*s*q and its cells at
// y = √3*s*(q/2 + r). The middle half of a column's width is a full-height
// strip: a candidate whose column core overlaps r is accepted outright.
// Only columns whose overlap with r lies in the slanted wings need the
// polygon test.
func (g *HexGrid) plan(r Rect, mode Coverage) bandPlan[HexCoord] {
	p := bandPlan[HexCoord]{kind: Hex, mode: mode}
	r = g.opts.clip(r)
	if r.Empty() {
		return p
	}
	o := g.opts.origin
	local := Rect{Min: r.Min.Sub(o), Max: r.Max.Sub(o)}
	pointy := g.opts.orientation == PointyTop
	if pointy {
		local = local.Swap()
	}

	s := g.size
	h := s * sqrt3 / 2
	colStep, rowStep := 1.5*s, sqrt3*s
	x0, x1 := local.Min.X, local.Max.X
	y0, y1 := local.Min.Y, local.Max.Y

	var q0, q1 int
	if mode == Contained {
		q0, q1 = lattice.Ceil((x0+s)/colStep), lattice.Floor((x1-s)/colStep)
	} else {
		q0, q1 = lattice.Floor((x0-s)/colStep)+1, lattice.Ceil((x1+s)/colStep)-1
	}
	if q1 < q0 {
		return p
	}

	eps := lattice.TieEpsilon * s
	p.count = q1 - q0 + 1
	p.band = func(i int, st *tessStats, yield func(HexCoord) bool) bool {
		q := q0 + i
		xc := colStep * float64(q)
		shift := float64(q) / 2

		var r0, r1 int
		if mode == Contained {
			r0, r1 = lattice.Ceil((y0+h)/rowStep-shift), lattice.Floor((y1-h)/rowStep-shift)
		} else {
			r0, r1 = lattice.Floor((y0-h)/rowStep-shift)+1, lattice.Ceil((y1+h)/rowStep-shift)-1
		}
		whole := mode == Contained || (x0 < xc+s/2-eps && x1 > xc-s/2+eps)

		for rr := r0; rr <= r1; rr++ {
			if whole {
				st.accept()
			} else {
				center := Pt(xc, rowStep*(float64(rr)+shift))
				if !st.check(overlapsRect(hexagon(center, s, 0), local, eps)) {
					continue
				}
			}
			c := HexCoord{Q: q, R: rr}
			if pointy {
				c = HexCoord{Q: rr, R: q}
			}
			if !yield(c) {
				return false
			}
		}
		return true
	}
	return p
}

// cubeRound returns the hex containing fractional axial (q, r). Each cube
// component rounds half up; the one that moved most is then recomputed
// from the other two, preferring Q, then R, when residuals tie.
func cubeRound(q, r float64) HexCoord {
	s := -q - r
	rq, rr, rs := lattice.RoundHalfUp(q), lattice.RoundHalfUp(r), lattice.RoundHalfUp(s)
	dq := math.Abs(float64(rq) - q)
	dr := math.Abs(float64(rr) - r)
	ds := math.Abs(float64(rs) - s)

	const eps = lattice.TieEpsilon
	switch {
	case dq >= dr-eps && dq >= ds-eps:
		rq = -rr - rs
	case dr >= ds-eps:
		rr = -rq - rs
	}
	return HexCoord{Q: rq, R: rr}
}

// hexagon returns the corners of a regular hexagon of circumradius size,
// counter-clockwise from the corner at angle start.
func hexagon(center Point, size, start float64) []Point {
	pts := make([]Point, 6)
	for i := range pts {
		a := start + float64(i)*math.Pi/3
		pts[i] = Pt(center.X+size*math.Cos(a), center.Y+size*math.Sin(a))
	}
	return pts
}
