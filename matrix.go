package grid

import "math"

// Matrix is a 2D affine map in row-major 2x3 form:
//
//	| a  b  c |
//	| d  e  f |
//
// so that
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Every topology describes its lattice with one: the columns (a,d) and (b,e)
// are the screen-space steps of the two lattice axes and (c,f) is the screen
// position of lattice coordinate (0,0).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity map.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Lattice returns the map that sends lattice coordinate (i, j) to
// origin + i*u + j*v.
func Lattice(u, v, origin Point) Matrix {
	return Matrix{
		A: u.X, B: v.X, C: origin.X,
		D: u.Y, E: v.Y, F: origin.Y,
	}
}

// TransformPoint applies the map to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the signed area scale of the map.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse map. The second result is false when the map
// collapses the plane onto a line or its entries are not finite.
//
// Singularity is judged relative to the size of the linear part, so a
// lattice of any positive scale inverts.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	scale := (math.Abs(m.A) + math.Abs(m.B)) * (math.Abs(m.D) + math.Abs(m.E))
	if !(math.Abs(det) > scale*1e-12) || math.IsInf(scale, 0) || math.IsInf(1/det, 0) {
		return Identity(), false
	}

	inv := 1.0 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}
