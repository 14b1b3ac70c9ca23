package grid

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Shape is a finite set of cells.
type Shape[C comparable] interface {
	Contains(c C) bool
	Len() int
	// All iterates the cells in no particular order.
	All() iter.Seq[C]
}

// ShapeContainer is a Shape that associates a value with every cell.
type ShapeContainer[C comparable, V any] interface {
	Shape[C]
	Get(c C) (V, bool)
	Set(c C, v V)
	// Delete removes c and reports whether it was present.
	Delete(c C) bool
	Items() iter.Seq2[C, V]
}

// HashShape is a map-backed Shape. The zero value is an empty shape ready
// to use.
type HashShape[C Cell[C]] struct {
	m map[C]struct{}
}

// NewHashShape returns a shape holding cells.
func NewHashShape[C Cell[C]](cells ...C) *HashShape[C] {
	s := &HashShape[C]{m: make(map[C]struct{}, len(cells))}
	for _, c := range cells {
		s.m[c] = struct{}{}
	}
	return s
}

// CollectShape drains seq into a new shape.
func CollectShape[C Cell[C]](seq iter.Seq[C]) *HashShape[C] {
	s := NewHashShape[C]()
	for c := range seq {
		s.m[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is in s.
func (s *HashShape[C]) Contains(c C) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the number of cells.
func (s *HashShape[C]) Len() int { return len(s.m) }

// Empty reports whether s has no cells.
func (s *HashShape[C]) Empty() bool { return len(s.m) == 0 }

// All iterates the cells in no particular order.
func (s *HashShape[C]) All() iter.Seq[C] {
	return maps.Keys(s.m)
}

// Add inserts cells.
func (s *HashShape[C]) Add(cells ...C) {
	if s.m == nil {
		s.m = make(map[C]struct{}, len(cells))
	}
	for _, c := range cells {
		s.m[c] = struct{}{}
	}
}

// Remove deletes c and reports whether it was present.
func (s *HashShape[C]) Remove(c C) bool {
	if _, ok := s.m[c]; !ok {
		return false
	}
	delete(s.m, c)
	return true
}

// Clone returns an independent copy of s.
func (s *HashShape[C]) Clone() *HashShape[C] {
	return &HashShape[C]{m: maps.Clone(s.m)}
}

// Union returns the cells in s or o.
func (s *HashShape[C]) Union(o Shape[C]) *HashShape[C] {
	out := s.Clone()
	for c := range o.All() {
		out.Add(c)
	}
	return out
}

// Intersect returns the cells in both s and o.
func (s *HashShape[C]) Intersect(o Shape[C]) *HashShape[C] {
	out := NewHashShape[C]()
	for c := range s.m {
		if o.Contains(c) {
			out.m[c] = struct{}{}
		}
	}
	return out
}

// Difference returns the cells in s but not in o.
func (s *HashShape[C]) Difference(o Shape[C]) *HashShape[C] {
	out := NewHashShape[C]()
	for c := range s.m {
		if !o.Contains(c) {
			out.m[c] = struct{}{}
		}
	}
	return out
}

// IsSubset reports whether every cell of s is in o.
func (s *HashShape[C]) IsSubset(o Shape[C]) bool {
	if s.Len() > o.Len() {
		return false
	}
	for c := range s.m {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every cell of o is in s.
func (s *HashShape[C]) IsSuperset(o Shape[C]) bool {
	for c := range o.All() {
		if !s.Contains(c) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether s and o share no cell.
func (s *HashShape[C]) IsDisjoint(o Shape[C]) bool {
	for c := range s.m {
		if o.Contains(c) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold the same cells.
func (s *HashShape[C]) Equal(o Shape[C]) bool {
	return s.Len() == o.Len() && s.IsSubset(o)
}

// Sorted returns the cells ordered by their Compare method.
func (s *HashShape[C]) Sorted() []C {
	return slices.SortedFunc(maps.Keys(s.m), func(a, b C) int { return a.Compare(b) })
}

// String lists the cells in sorted order, e.g. "{(0,0) (1,0)}".
func (s *HashShape[C]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Sorted() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Translate returns shape moved by off.
func Translate[C interface {
	Cell[C]
	Add(C) C
}](shape Shape[C], off C) *HashShape[C] {
	out := NewHashShape[C]()
	for c := range shape.All() {
		out.m[c.Add(off)] = struct{}{}
	}
	return out
}

// HashContainer is a map-backed ShapeContainer. The zero value is an empty
// container ready to use.
type HashContainer[C Cell[C], V any] struct {
	m map[C]V
}

// NewHashContainer returns an empty container.
func NewHashContainer[C Cell[C], V any]() *HashContainer[C, V] {
	return &HashContainer[C, V]{m: make(map[C]V)}
}

// FillShape returns a container mapping every cell of shape to v.
func FillShape[C Cell[C], V any](shape Shape[C], v V) *HashContainer[C, V] {
	hc := &HashContainer[C, V]{m: make(map[C]V, shape.Len())}
	for c := range shape.All() {
		hc.m[c] = v
	}
	return hc
}

// Contains reports whether c has a value.
func (hc *HashContainer[C, V]) Contains(c C) bool {
	_, ok := hc.m[c]
	return ok
}

// Len returns the number of cells with a value.
func (hc *HashContainer[C, V]) Len() int { return len(hc.m) }

// All iterates the cells in no particular order.
func (hc *HashContainer[C, V]) All() iter.Seq[C] {
	return maps.Keys(hc.m)
}

// Get returns the value stored at c.
func (hc *HashContainer[C, V]) Get(c C) (V, bool) {
	v, ok := hc.m[c]
	return v, ok
}

// Set stores v at c, replacing any previous value.
func (hc *HashContainer[C, V]) Set(c C, v V) {
	if hc.m == nil {
		hc.m = make(map[C]V)
	}
	hc.m[c] = v
}

// Delete removes c and reports whether it was present.
func (hc *HashContainer[C, V]) Delete(c C) bool {
	if _, ok := hc.m[c]; !ok {
		return false
	}
	delete(hc.m, c)
	return true
}

// Items iterates cells and values in no particular order.
func (hc *HashContainer[C, V]) Items() iter.Seq2[C, V] {
	return maps.All(hc.m)
}

// Shape returns the set of cells that have a value.
func (hc *HashContainer[C, V]) Shape() *HashShape[C] {
	return CollectShape(hc.All())
}

// Compile-time interface checks.
var (
	_ Shape[HexCoord]                       = (*HashShape[HexCoord])(nil)
	_ ShapeContainer[SquareCoord, struct{}] = (*HashContainer[SquareCoord, struct{}])(nil)
)
