// Package lattice holds the integer and rounding arithmetic shared by the
// grid coordinate systems.
//
// Every float-to-cell decision in the grid package goes through the
// tie-aware helpers here, so that points on a cell boundary resolve the same
// way regardless of accumulated floating point error.
package lattice

import (
	"math"

	"golang.org/x/exp/constraints"
)

// TieEpsilon is the distance, in cell units, within which a value is
// treated as lying exactly on a boundary.
const TieEpsilon = 1e-9

// MaxCoord bounds the magnitude of a lattice value that may be turned into
// a cell coordinate. Beyond it, sums and differences of cell coordinates
// could overflow int.
const MaxCoord = math.MaxInt / 4

// Representable reports whether x lies within ±MaxCoord. It is false for
// NaN and both infinities.
func Representable(x float64) bool {
	return x >= -MaxCoord && x <= MaxCoord
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Floor returns ⌊x⌋, treating x within TieEpsilon below an integer as that
// integer. Boundary points therefore belong to the cell on the positive side.
func Floor(x float64) int {
	return int(math.Floor(x + TieEpsilon))
}

// Ceil returns ⌈x⌉, treating x within TieEpsilon above an integer as that
// integer.
func Ceil(x float64) int {
	return int(math.Ceil(x - TieEpsilon))
}

// RoundHalfUp rounds to the nearest integer; halves round toward +∞.
func RoundHalfUp(x float64) int {
	return Floor(x + 0.5)
}

// Less reports whether a is smaller than b by more than TieEpsilon.
func Less(a, b float64) bool {
	return a < b-TieEpsilon
}

// Near reports whether a and b are within TieEpsilon of each other.
func Near(a, b float64) bool {
	return math.Abs(a-b) <= TieEpsilon
}
