package grid

import "fmt"

// Axis names one coordinate of a cell address: X and Y for squares, Q, R
// and S for hexes, and the lanes A, B and C for triangles (see
// TriCoord.Lanes).
type Axis uint8

// Axes of the three tilings.
const (
	AxisX Axis = iota
	AxisY
	AxisQ
	AxisR
	AxisS
	AxisA
	AxisB
	AxisC
)

var axisNames = [...]string{
	AxisX: "X", AxisY: "Y",
	AxisQ: "Q", AxisR: "R", AxisS: "S",
	AxisA: "A", AxisB: "B", AxisC: "C",
}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", a)
}

// Kind returns the tiling the axis belongs to.
func (a Axis) Kind() Kind {
	switch {
	case a <= AxisY:
		return Square
	case a <= AxisS:
		return Hex
	}
	return Triangle
}

// Axes returns the axes of the tiling.
func (k Kind) Axes() []Axis {
	switch k {
	case Square:
		return []Axis{AxisX, AxisY}
	case Hex:
		return []Axis{AxisQ, AxisR, AxisS}
	case Triangle:
		return []Axis{AxisA, AxisB, AxisC}
	}
	return nil
}

func foreignAxis(k Kind, a Axis) string {
	return fmt.Sprintf("grid: %v is not a %v axis", a, k)
}

// RotateCCW turns c a quarter turn counter-clockwise about cell (0,0).
func (c SquareCoord) RotateCCW() SquareCoord {
	return SquareCoord{X: -c.Y, Y: c.X}
}

// RotateCW turns c a quarter turn clockwise about cell (0,0).
func (c SquareCoord) RotateCW() SquareCoord {
	return SquareCoord{X: c.Y, Y: -c.X}
}

// Reflect mirrors c through cell (0,0) along axis: AxisX negates X and
// AxisY negates Y. It panics for a non-square axis.
func (c SquareCoord) Reflect(axis Axis) SquareCoord {
	switch axis {
	case AxisX:
		return SquareCoord{X: -c.X, Y: c.Y}
	case AxisY:
		return SquareCoord{X: c.X, Y: -c.Y}
	}
	panic(foreignAxis(Square, axis))
}

// RotateCCW turns c by 60° counter-clockwise about hex (0,0). The same
// permutation of cube coordinates is a counter-clockwise turn in both
// orientations.
func (c HexCoord) RotateCCW() HexCoord {
	return HexCoord{Q: -c.R, R: -c.S()}
}

// RotateCW turns c by 60° clockwise about hex (0,0).
func (c HexCoord) RotateCW() HexCoord {
	return HexCoord{Q: -c.S(), R: -c.Q}
}

// Reflect mirrors c in the line through hex (0,0) on which the given cube
// coordinate is zero: that coordinate is kept and the other two swap. It
// panics for a non-hex axis.
func (c HexCoord) Reflect(axis Axis) HexCoord {
	switch axis {
	case AxisQ:
		return HexCoord{Q: c.Q, R: c.S()}
	case AxisR:
		return HexCoord{Q: c.S(), R: c.R}
	case AxisS:
		return HexCoord{Q: c.R, R: c.Q}
	}
	panic(foreignAxis(Hex, axis))
}

// RotateCCW turns c by 60° counter-clockwise about the lattice corner at
// the grid origin, the lower left corner of Tri(0,0). Up and down
// triangles trade places.
func (c TriCoord) RotateCCW() TriCoord {
	a, b, cc := c.Lanes()
	return TriFromLanes(cc, -a-1, b)
}

// RotateCW turns c by 60° clockwise about the corner at the grid origin.
func (c TriCoord) RotateCW() TriCoord {
	a, b, cc := c.Lanes()
	return TriFromLanes(-b-1, cc, a)
}

// Reflect mirrors c in the lattice line through the grid origin that
// separates lane 0 from lane -1 of axis: AxisA is the horizontal line,
// AxisB the line rising at 60° and AxisC the line rising at 120°. It
// panics for a non-triangle axis.
func (c TriCoord) Reflect(axis Axis) TriCoord {
	a, b, cc := c.Lanes()
	switch axis {
	case AxisA:
		return TriFromLanes(-a-1, cc, b)
	case AxisB:
		return TriFromLanes(cc, -b-1, a)
	case AxisC:
		return TriFromLanes(-b-1, -a-1, -cc-1)
	}
	panic(foreignAxis(Triangle, axis))
}

// RotateCCW applies the counter-clockwise turn of c's tiling.
func (c Coord) RotateCCW() Coord {
	switch c.kind {
	case Hex:
		return HexCell(Hx(c.a, c.b).RotateCCW())
	case Triangle:
		return TriCell(Tri(c.a, c.b).RotateCCW())
	}
	return SquareCell(Sq(c.a, c.b).RotateCCW())
}

// RotateCW applies the clockwise turn of c's tiling.
func (c Coord) RotateCW() Coord {
	switch c.kind {
	case Hex:
		return HexCell(Hx(c.a, c.b).RotateCW())
	case Triangle:
		return TriCell(Tri(c.a, c.b).RotateCW())
	}
	return SquareCell(Sq(c.a, c.b).RotateCW())
}

// Reflect applies the reflection of c's tiling. It panics when axis
// belongs to another tiling.
func (c Coord) Reflect(axis Axis) Coord {
	switch c.kind {
	case Hex:
		return HexCell(Hx(c.a, c.b).Reflect(axis))
	case Triangle:
		return TriCell(Tri(c.a, c.b).Reflect(axis))
	}
	return SquareCell(Sq(c.a, c.b).Reflect(axis))
}
