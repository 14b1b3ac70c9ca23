package grid

import (
	"iter"
	"math"
)

// Within returns every cell at most radius steps from center. A negative
// radius gives an empty shape.
//
// The region is grown breadth first through Neighbors; Distance of every
// topology is its neighbor step count, so the frontier at depth k is
// exactly the ring of radius k.
func Within[C Cell[C]](t Topology[C], center C, radius int) *HashShape[C] {
	out := NewHashShape[C]()
	for ring := range rings(t, center, radius) {
		out.Add(ring...)
	}
	return out
}

// Ring returns the cells exactly radius steps from center.
func Ring[C Cell[C]](t Topology[C], center C, radius int) *HashShape[C] {
	out := NewHashShape[C]()
	if radius < 0 {
		return out
	}
	k := 0
	for ring := range rings(t, center, radius) {
		if k == radius {
			out.Add(ring...)
		}
		k++
	}
	return out
}

// rings yields the breadth-first frontiers around center for depths
// 0..radius.
func rings[C Cell[C]](t Topology[C], center C, radius int) iter.Seq[[]C] {
	return func(yield func([]C) bool) {
		if radius < 0 {
			return
		}
		seen := map[C]struct{}{center: {}}
		frontier := []C{center}
		for depth := 0; ; depth++ {
			if !yield(frontier) || depth == radius {
				return
			}
			var next []C
			for _, c := range frontier {
				for _, n := range t.Neighbors(c) {
					if _, ok := seen[n]; ok {
						continue
					}
					seen[n] = struct{}{}
					next = append(next, n)
				}
			}
			frontier = next
		}
	}
}

// PathWithin yields the cells of t.Path(a, b) while they stay inside
// region, stopping before the first cell that leaves it.
func PathWithin[C Cell[C]](t Topology[C], a, b C, region Shape[C]) iter.Seq[C] {
	return func(yield func(C) bool) {
		for c := range t.Path(a, b) {
			if !region.Contains(c) || !yield(c) {
				return
			}
		}
	}
}

// Ray yields c and then each cell reached by stepping in direction d. It
// ends where d is undefined at the current cell, so a triangle ray holds at
// most two cells; on square and hex grids it runs until the caller stops
// ranging.
func Ray[C Cell[C]](t Topology[C], c C, d Direction) iter.Seq[C] {
	return func(yield func(C) bool) {
		for {
			if !yield(c) {
				return
			}
			n, ok := t.Neighbor(c, d)
			if !ok {
				return
			}
			c = n
		}
	}
}

// walk yields start, next(start), next(next(start)) and so on.
func walk[C any](start C, next func(C) C) iter.Seq[C] {
	return func(yield func(C) bool) {
		for c := start; yield(c); c = next(c) {
		}
	}
}

// DirectionAngle returns the screen-space angle, in radians in (-π, π], of
// the step from c to its neighbor in direction d. On hex and triangle grids
// it differs from d.Angle(): a flat-top hex's NorthEast step points at
// π/6, not π/4.
func DirectionAngle[C Cell[C]](t Topology[C], c C, d Direction) (float64, bool) {
	n, ok := t.Neighbor(c, d)
	if !ok {
		return 0, false
	}
	v := t.ToScreen(n).Sub(t.ToScreen(c))
	return math.Atan2(v.Y, v.X), true
}

// NearestDirection returns the direction defined at c whose step angle is
// closest to angle. It reports false only if c has no neighbors.
func NearestDirection[C Cell[C]](t Topology[C], c C, angle float64) (Direction, bool) {
	var (
		best  Direction
		found bool
		gap   float64
	)
	for d := range t.Directions(c).All() {
		a, _ := DirectionAngle(t, c, d)
		g := angleGap(a, angle)
		if !found || g < gap-1e-12 {
			best, found, gap = d, true, g
		}
	}
	return best, found
}

// angleGap returns the absolute difference of two angles, in [0, π].
func angleGap(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
