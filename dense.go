package grid

import (
	"fmt"
	"iter"
)

// DenseContainer stores values for a fixed rectangular block of square
// cells in a flat slice.
//
// Cells are kept in row-major order: index = (y-minY)*width + (x-minX).
// Lookups are a bounds check and an index, which makes DenseContainer the
// better choice over HashContainer for boards that are mostly occupied.
//
// Thread safety: DenseContainer is NOT thread-safe.
type DenseContainer[V any] struct {
	min    SquareCoord
	width  int
	height int

	values  []V
	present []bool
	count   int
}

// NewDenseContainer creates an empty container for the width×height block
// whose lower-left cell is origin. Non-positive dimensions give a container
// that holds nothing.
func NewDenseContainer[V any](origin SquareCoord, width, height int) *DenseContainer[V] {
	width, height = max(width, 0), max(height, 0)
	return &DenseContainer[V]{
		min:     origin,
		width:   width,
		height:  height,
		values:  make([]V, width*height),
		present: make([]bool, width*height),
	}
}

// Bounds returns the lower-left cell and the dimensions of the block.
func (dc *DenseContainer[V]) Bounds() (origin SquareCoord, width, height int) {
	return dc.min, dc.width, dc.height
}

// InBounds reports whether c lies in the block, whether or not it holds a
// value.
func (dc *DenseContainer[V]) InBounds(c SquareCoord) bool {
	x, y := c.X-dc.min.X, c.Y-dc.min.Y
	return x >= 0 && x < dc.width && y >= 0 && y < dc.height
}

func (dc *DenseContainer[V]) index(c SquareCoord) int {
	return (c.Y-dc.min.Y)*dc.width + (c.X - dc.min.X)
}

func (dc *DenseContainer[V]) cell(i int) SquareCoord {
	return SquareCoord{X: dc.min.X + i%dc.width, Y: dc.min.Y + i/dc.width}
}

// Contains reports whether c holds a value.
func (dc *DenseContainer[V]) Contains(c SquareCoord) bool {
	return dc.InBounds(c) && dc.present[dc.index(c)]
}

// Len returns the number of cells holding a value.
func (dc *DenseContainer[V]) Len() int { return dc.count }

// All iterates the occupied cells in row-major order.
func (dc *DenseContainer[V]) All() iter.Seq[SquareCoord] {
	return func(yield func(SquareCoord) bool) {
		for i, ok := range dc.present {
			if ok && !yield(dc.cell(i)) {
				return
			}
		}
	}
}

// Get returns the value at c.
func (dc *DenseContainer[V]) Get(c SquareCoord) (V, bool) {
	if !dc.Contains(c) {
		var zero V
		return zero, false
	}
	return dc.values[dc.index(c)], true
}

// Set stores v at c. It panics if c is outside the block.
func (dc *DenseContainer[V]) Set(c SquareCoord, v V) {
	if !dc.InBounds(c) {
		panic(fmt.Sprintf("grid: cell %v outside dense block at %v size %dx%d", c, dc.min, dc.width, dc.height))
	}
	i := dc.index(c)
	if !dc.present[i] {
		dc.present[i] = true
		dc.count++
	}
	dc.values[i] = v
}

// Delete clears c and reports whether it held a value.
func (dc *DenseContainer[V]) Delete(c SquareCoord) bool {
	if !dc.Contains(c) {
		return false
	}
	i := dc.index(c)
	var zero V
	dc.values[i] = zero
	dc.present[i] = false
	dc.count--
	return true
}

// Items iterates occupied cells and their values in row-major order.
func (dc *DenseContainer[V]) Items() iter.Seq2[SquareCoord, V] {
	return func(yield func(SquareCoord, V) bool) {
		for i, ok := range dc.present {
			if ok && !yield(dc.cell(i), dc.values[i]) {
				return
			}
		}
	}
}

// Fill stores v at every cell of the block.
func (dc *DenseContainer[V]) Fill(v V) {
	for i := range dc.values {
		dc.values[i] = v
		dc.present[i] = true
	}
	dc.count = len(dc.values)
}

var _ ShapeContainer[SquareCoord, int] = (*DenseContainer[int])(nil)
