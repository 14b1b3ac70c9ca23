package grid

import (
	"iter"
	"log/slog"

	"github.com/gogpu/grid/internal/parallel"
)

// tessStats counts the work done by one tessellation.
type tessStats struct {
	candidates int
	tested     int
	emitted    int
}

// accept records a candidate taken without a geometric test.
func (s *tessStats) accept() {
	s.candidates++
	s.emitted++
}

// check records a candidate that needed a geometric test and returns ok.
func (s *tessStats) check(ok bool) bool {
	s.candidates++
	s.tested++
	if ok {
		s.emitted++
	}
	return ok
}

func (s *tessStats) add(o tessStats) {
	s.candidates += o.candidates
	s.tested += o.tested
	s.emitted += o.emitted
}

// bandPlan splits a tessellation into count independent bands (rows or
// columns of candidate cells). band(i, ...) yields the accepted cells of
// band i in ascending order and returns false if yield asked to stop.
//
// A zero plan has no bands and yields nothing.
type bandPlan[C any] struct {
	kind  Kind
	mode  Coverage
	count int
	band  func(i int, st *tessStats, yield func(C) bool) bool
}

// seq runs the bands one after another on the caller's goroutine.
func (p bandPlan[C]) seq() iter.Seq[C] {
	return func(yield func(C) bool) {
		var st tessStats
		for i := range p.count {
			if !p.band(i, &st, yield) {
				break
			}
		}
		p.log(st, 1)
	}
}

// collect materialises the plan. With more than one worker the bands run on
// a worker pool; the result is concatenated in band order and therefore
// identical to collecting seq.
func (p bandPlan[C]) collect(workers int) []C {
	if workers <= 1 || p.count < 2 {
		var out []C
		for c := range p.seq() {
			out = append(out, c)
		}
		return out
	}

	pool := parallel.NewWorkerPool(min(workers, p.count))
	defer pool.Close()

	stats := make([]tessStats, p.count)
	out := parallel.Collect(pool, p.count, func(i int) []C {
		var cells []C
		p.band(i, &stats[i], func(c C) bool {
			cells = append(cells, c)
			return true
		})
		return cells
	})

	var st tessStats
	for _, s := range stats {
		st.add(s)
	}
	p.log(st, pool.Workers())
	return out
}

func (p bandPlan[C]) log(st tessStats, workers int) {
	Logger().Debug("grid: tessellate",
		slog.String("kind", p.kind.String()),
		slog.String("mode", p.mode.String()),
		slog.Int("bands", p.count),
		slog.Int("candidates", st.candidates),
		slog.Int("tested", st.tested),
		slog.Int("emitted", st.emitted),
		slog.Int("workers", workers),
	)
}
