package grid

import (
	"fmt"
	"math"
)

// Option configures a grid during construction.
//
// Example:
//
//	// Pointy-top hexes of edge 32, anchored at (100, 100)
//	g, err := grid.NewHex(32,
//	    grid.WithOrientation(grid.PointyTop),
//	    grid.WithOrigin(grid.Pt(100, 100)),
//	)
type Option func(*options)

// options holds the optional configuration shared by every topology.
type options struct {
	origin      Point
	orientation Orientation
	metric      Metric
	bounds      Rect
	bounded     bool
	workers     int
}

func defaultOptions() options {
	return options{
		orientation: FlatTop,
		metric:      Chebyshev,
		workers:     1,
	}
}

// WithOrigin sets the screen position of cell (0,0)'s reference point: the
// lower-left corner for square cells, the center for hexes and the left end
// of row 0's baseline for triangles.
func WithOrigin(p Point) Option {
	return func(o *options) {
		o.origin = p
	}
}

// WithOrientation selects flat-top or pointy-top hexes. Other topologies
// ignore it.
func WithOrientation(or Orientation) Option {
	return func(o *options) {
		o.orientation = or
	}
}

// WithMetric selects the square distance policy. Other topologies ignore it.
func WithMetric(m Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithBounds limits the grid to a screen rectangle. FromScreen reports false
// for points outside it and tessellation clips requests to it.
func WithBounds(r Rect) Option {
	return func(o *options) {
		o.bounds = r.Canon()
		o.bounded = true
	}
}

// WithWorkers lets Cells spread tessellation bands over n goroutines.
// Values of 0 or 1 keep tessellation on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func buildOptions(size float64, opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(size > 0) || math.IsInf(size, 1) {
		return o, fmt.Errorf("%w: %v", ErrInvalidCellSize, size)
	}
	if o.orientation != FlatTop && o.orientation != PointyTop {
		return o, fmt.Errorf("%w: %d", ErrInvalidOrientation, o.orientation)
	}
	if o.metric != Chebyshev && o.metric != Manhattan {
		return o, fmt.Errorf("%w: %d", ErrInvalidMetric, o.metric)
	}
	if o.bounded && o.bounds.Empty() {
		return o, fmt.Errorf("%w: %v", ErrInvalidBounds, o.bounds)
	}
	if o.workers < 0 {
		return o, fmt.Errorf("%w: %d", ErrInvalidWorkers, o.workers)
	}
	if o.workers == 0 {
		o.workers = 1
	}
	return o, nil
}

// inBounds reports whether p may be mapped to a cell.
func (o *options) inBounds(p Point) bool {
	return !o.bounded || o.bounds.Contains(p)
}

// clip restricts a tessellation request to the configured bounds. A request
// with Max below Min stays empty.
func (o *options) clip(r Rect) Rect {
	if o.bounded {
		r = r.Intersect(o.bounds)
	}
	return r
}
