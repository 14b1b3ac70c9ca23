package grid

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Errors returned by grid constructors. They are wrapped with the offending
// value; test for them with errors.Is.
var (
	ErrInvalidCellSize    = errors.New("grid: cell size must be positive and finite")
	ErrInvalidOrientation = errors.New("grid: invalid hex orientation")
	ErrInvalidMetric      = errors.New("grid: invalid square metric")
	ErrInvalidBounds      = errors.New("grid: bounds must have positive area")
	ErrInvalidWorkers     = errors.New("grid: worker count must not be negative")
	ErrUnknownKind        = errors.New("grid: unknown topology kind")
	ErrInvalidCoverage    = errors.New("grid: unknown coverage mode")
)

// Kind identifies a tiling.
type Kind uint8

// Supported tilings.
const (
	Square Kind = iota
	Hex
	Triangle
)

var kindNames = [...]string{Square: "square", Hex: "hex", Triangle: "triangle"}

// String returns the lower-case name of the tiling.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind parses "square", "hex"/"hexagon" or "triangle"/"tri".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "sq":
		return Square, nil
	case "hex", "hexagon":
		return Hex, nil
	case "triangle", "tri":
		return Triangle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Orientation selects how hexes sit on the screen.
type Orientation uint8

const (
	// FlatTop hexes have a horizontal top edge; columns are straight.
	FlatTop Orientation = iota
	// PointyTop hexes have a vertex at the top; rows are straight.
	PointyTop
)

func (o Orientation) String() string {
	switch o {
	case FlatTop:
		return "flat"
	case PointyTop:
		return "pointy"
	}
	return fmt.Sprintf("Orientation(%d)", o)
}

// ParseOrientation parses "flat" or "pointy".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "flat-top", "flattop":
		return FlatTop, nil
	case "pointy", "pointy-top", "pointytop":
		return PointyTop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

// Metric is the distance policy of a square grid.
type Metric uint8

const (
	// Chebyshev counts a diagonal step as one move; all eight neighbors
	// are adjacent.
	Chebyshev Metric = iota
	// Manhattan allows only the four cardinal moves.
	Manhattan
)

func (m Metric) String() string {
	switch m {
	case Chebyshev:
		return "chebyshev"
	case Manhattan:
		return "manhattan"
	}
	return fmt.Sprintf("Metric(%d)", m)
}

// ParseMetric parses "chebyshev" or "manhattan".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chebyshev", "king", "8":
		return Chebyshev, nil
	case "manhattan", "taxicab", "4":
		return Manhattan, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMetric, s)
}

// Coverage selects which cells a tessellation returns.
type Coverage uint8

const (
	// Intersecting returns every cell whose interior overlaps the rectangle
	// with positive area. Cells that only touch it are left out.
	Intersecting Coverage = iota
	// Contained returns only cells lying entirely inside the rectangle.
	Contained
)

func (c Coverage) String() string {
	switch c {
	case Intersecting:
		return "intersecting"
	case Contained:
		return "contained"
	}
	return fmt.Sprintf("Coverage(%d)", c)
}

// ParseCoverage parses "intersecting" or "contained".
func ParseCoverage(s string) (Coverage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intersecting", "intersect", "overlap":
		return Intersecting, nil
	case "contained", "inside", "within":
		return Contained, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCoverage, s)
}

// Cell is the constraint satisfied by every cell address type.
type Cell[C any] interface {
	comparable
	fmt.Stringer
	// Compare orders cells; it returns -1, 0 or 1.
	Compare(C) int
}

// Topology is the capability set shared by every tiling.
//
// Cell addresses are plain values, so a Topology never owns cells; it only
// answers questions about them. Implementations are immutable and safe for
// concurrent use.
type Topology[C Cell[C]] interface {
	// Kind reports which tiling this is.
	Kind() Kind
	// CellSize is the edge length of a cell in screen units.
	CellSize() float64

	// Neighbor returns the cell adjacent to c in direction d. It reports
	// false when the tiling has no neighbor in that direction for c.
	Neighbor(c C, d Direction) (C, bool)
	// Neighbors returns every adjacent cell in compass order.
	Neighbors(c C) []C
	// Directions returns the directions for which Neighbor succeeds at c.
	Directions(c C) DirectionSet

	// Distance is the number of single neighbor steps separating a and b.
	Distance(a, b C) int

	// ToScreen returns the center of c.
	ToScreen(c C) Point
	// FromScreen returns the cell containing p. Points on a shared edge or
	// corner resolve by a fixed rule of the tiling. It reports false for
	// points outside the configured bounds and for points with no
	// representable cell: NaN, infinite, or farther than lattice.MaxCoord
	// cells from the origin.
	FromScreen(p Point) (C, bool)
	// Vertices returns the corners of c counter-clockwise.
	Vertices(c C) []Point
	// Edges returns the sides of c keyed by the direction of the cell
	// across each side. Directions that only meet c at a corner are absent.
	Edges(c C) map[Direction]Edge

	// Lane yields c and then the cells met by walking along axis: the line
	// of cells that share c's value of that coordinate. positive selects
	// one of the two ways along the line; each tiling documents which. The
	// walk does not end by itself. Lane panics for an axis of another
	// tiling.
	Lane(c C, axis Axis, positive bool) iter.Seq[C]

	// Path yields the cells of a straight line from a to b inclusive.
	// Ranging over the result again restarts the walk.
	Path(a, b C) iter.Seq[C]

	// Tessellate yields the cells covering r under the given mode, band by
	// band in a fixed order.
	Tessellate(r Rect, mode Coverage) iter.Seq[C]
	// Cells collects Tessellate, using the configured workers.
	Cells(r Rect, mode Coverage) []C
}

// Must panics if err is non-nil. It is intended for package-level grid
// variables.
//
//	var board = grid.Must(grid.NewSquare(32))
func Must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

// Compile-time interface checks.
var (
	_ Topology[SquareCoord] = (*SquareGrid)(nil)
	_ Topology[HexCoord]    = (*HexGrid)(nil)
	_ Topology[TriCoord]    = (*TriGrid)(nil)
)
