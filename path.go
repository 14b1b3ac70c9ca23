package grid

import (
	"iter"

	"github.com/gogpu/grid/internal/lattice"
)

// stepPath walks from a to b one neighbor at a time.
//
// Each step considers only the neighbors that are exactly one step closer to
// b, so the walk has Distance(a, b)+1 cells and never backtracks. Among
// those, the cell whose center lies nearest the segment between the centers
// of a and b wins; remaining ties go to the cell nearest the matching point
// on that segment, then to compass order.
//
// Used where rounding sampled points can jump across a shared vertex:
// triangles, and squares under the Manhattan metric.
func stepPath[C Cell[C]](t Topology[C], a, b C) iter.Seq[C] {
	return func(yield func(C) bool) {
		if !yield(a) {
			return
		}
		n := t.Distance(a, b)
		if n == 0 {
			return
		}

		size := t.CellSize()
		pa, pb := t.ToScreen(a), t.ToScreen(b)
		seg := pb.Sub(pa)
		segLen := seg.Length()

		cur := a
		for k := 1; k <= n; k++ {
			sample := pa.Lerp(pb, float64(k)/float64(n))

			var (
				best              C
				found             bool
				bestOff, bestNear float64
			)
			for _, c := range t.Neighbors(cur) {
				if t.Distance(c, b) != n-k {
					continue
				}
				p := t.ToScreen(c)
				off := 0.0
				if segLen > 0 {
					off = lattice.Abs(seg.Cross(p.Sub(pa))) / segLen / size
				}
				near := p.Distance(sample) / size

				switch {
				case !found,
					lattice.Less(off, bestOff),
					lattice.Near(off, bestOff) && lattice.Less(near, bestNear):
					best, found, bestOff, bestNear = c, true, off, near
				}
			}
			if !found {
				// Distance is the adjacency metric of every topology, so a
				// closer neighbor always exists.
				panic("grid: no neighbor of " + cur.String() + " is closer to " + b.String())
			}

			cur = best
			if !yield(cur) {
				return
			}
		}
	}
}
