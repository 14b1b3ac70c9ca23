package grid

import (
	"fmt"
	"math"
)

// Point represents a position or vector in screen space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Perp returns the vector rotated a quarter turn counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Swap returns the point with its axes exchanged.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in screen space. Min is the lower-left
// corner and Max the upper-right one; a Rect whose Max does not exceed Min on
// both axes has no area.
type Rect struct {
	Min, Max Point
}

// R builds a Rect from two corners without reordering them.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// Canon returns r with its corners ordered so Min ≤ Max on both axes.
func (r Rect) Canon() Rect {
	return Rect{
		Min: Pt(math.Min(r.Min.X, r.Max.X), math.Min(r.Min.Y, r.Max.Y)),
		Max: Pt(math.Max(r.Min.X, r.Max.X), math.Max(r.Min.Y, r.Max.Y)),
	}
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has zero or negative area, or contains NaN.
func (r Rect) Empty() bool {
	return !(r.Max.X > r.Min.X && r.Max.Y > r.Min.Y)
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsStrict reports whether p lies strictly inside r.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of r and s. The result is Empty when they
// do not overlap with positive area.
func (r Rect) Intersect(s Rect) Rect {
	return Rect{
		Min: Pt(math.Max(r.Min.X, s.Min.X), math.Max(r.Min.Y, s.Min.Y)),
		Max: Pt(math.Min(r.Max.X, s.Max.X), math.Min(r.Max.Y, s.Max.Y)),
	}
}

// Overlaps reports whether r and s share positive area. Touching edges do
// not count.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Intersect(s).Empty()
}

// Swap returns r with its axes exchanged.
func (r Rect) Swap() Rect {
	return Rect{Min: r.Min.Swap(), Max: r.Max.Swap()}
}

// String formats the rectangle as "(x0,y0)-(x1,y1)".
func (r Rect) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

// Edge is one side of a cell, running counter-clockwise around it from A
// to B.
type Edge struct {
	A, B Point
}

// Midpoint returns the point halfway along e.
func (e Edge) Midpoint() Point { return e.A.Lerp(e.B, 0.5) }

// Length returns the distance from A to B.
func (e Edge) Length() float64 { return e.A.Distance(e.B) }

// edgeMap pairs consecutive vertices with the directions of the cells
// across them: dirs[i] names the side from vs[i] to vs[i+1].
func edgeMap(vs []Point, dirs []Direction) map[Direction]Edge {
	out := make(map[Direction]Edge, len(dirs))
	for i, d := range dirs {
		out[d] = Edge{A: vs[i], B: vs[(i+1)%len(vs)]}
	}
	return out
}
