package grid

import "math"

// overlapsRect reports whether the convex polygon poly and r share an area
// larger than zero. Polygons that only touch r along an edge or at a corner
// do not overlap. eps is the tolerance, in screen units, below which a gap
// or an overlap is treated as touching.
//
// The test is the separating axis theorem over the two rectangle axes and
// the polygon's edge normals.
func overlapsRect(poly []Point, r Rect, eps float64) bool {
	if len(poly) < 3 || r.Empty() {
		return false
	}

	// Rectangle axes first; they reject most candidates.
	minX, maxX := poly[0].X, poly[0].X
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if separated(minX, maxX, r.Min.X, r.Max.X, eps) ||
		separated(minY, maxY, r.Min.Y, r.Max.Y, eps) {
		return false
	}

	corners := [4]Point{r.Min, {r.Max.X, r.Min.Y}, r.Max, {r.Min.X, r.Max.Y}}
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		n := b.Sub(a).Perp()
		l := n.Length()
		if l == 0 {
			continue
		}
		n = n.Mul(1 / l)

		pMin, pMax := project(poly, n)
		rMin, rMax := project(corners[:], n)
		if separated(pMin, pMax, rMin, rMax, eps) {
			return false
		}
	}
	return true
}

func project(pts []Point, axis Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		d := p.Dot(axis)
		lo, hi = math.Min(lo, d), math.Max(hi, d)
	}
	return lo, hi
}

// separated reports whether [a0,a1] and [b0,b1] overlap by no more than eps.
func separated(a0, a1, b0, b1, eps float64) bool {
	return a1 <= b0+eps || b1 <= a0+eps
}
