package compass

import (
	"iter"
	"math/bits"
	"strings"
)

// Set is a set of directions packed into a single byte.
// The zero value is the empty set.
type Set uint8

// Predefined sets.
const (
	All       Set = 0b1111_1111
	Cardinals Set = 0b0101_0101
	Ordinals  Set = 0b1010_1010
)

// SetOf returns the set containing ds.
func SetOf(ds ...Direction) Set {
	var s Set
	for _, d := range ds {
		s = s.With(d)
	}
	return s
}

// Contains reports whether d is in s.
func (s Set) Contains(d Direction) bool {
	return d.Valid() && s&(1<<d) != 0
}

// With returns s with d added.
func (s Set) With(d Direction) Set {
	if !d.Valid() {
		return s
	}
	return s | 1<<d
}

// Without returns s with d removed.
func (s Set) Without(d Direction) Set {
	if !d.Valid() {
		return s
	}
	return s &^ (1 << d)
}

// Union returns the directions in either set.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns the directions in both sets.
func (s Set) Intersect(o Set) Set { return s & o }

// Difference returns the directions in s but not in o.
func (s Set) Difference(o Set) Set { return s &^ o }

// Len returns the number of directions in s.
func (s Set) Len() int { return bits.OnesCount8(uint8(s)) }

// Empty reports whether s has no directions.
func (s Set) Empty() bool { return s == 0 }

// Rotate turns every direction in s by steps eighth-turns.
func (s Set) Rotate(steps int) Set {
	var r Set
	for d := range s.All() {
		r = r.With(d.Rotate(steps))
	}
	return r
}

// All iterates the directions of s in counter-clockwise order from East.
func (s Set) All() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := range Direction(Count) {
			if s.Contains(d) && !yield(d) {
				return
			}
		}
	}
}

// Slice returns the directions of s in iteration order.
func (s Set) Slice() []Direction {
	out := make([]Direction, 0, s.Len())
	for d := range s.All() {
		out = append(out, d)
	}
	return out
}

// String formats s as "{East, North}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for d := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(d.String())
	}
	b.WriteByte('}')
	return b.String()
}
