package grid

import (
	"iter"

	"github.com/gogpu/grid/compass"
)

// Direction names a move between neighboring cells. It is the compass
// direction type; topologies decide which of the eight values they define.
type Direction = compass.Direction

// DirectionSet is a set of directions.
type DirectionSet = compass.Set

// The eight compass directions, counter-clockwise from East.
const (
	East      = compass.East
	NorthEast = compass.NorthEast
	North     = compass.North
	NorthWest = compass.NorthWest
	West      = compass.West
	SouthWest = compass.SouthWest
	South     = compass.South
	SouthEast = compass.SouthEast
)

// ParseDirection accepts a direction name or abbreviation such as "NE".
func ParseDirection(s string) (Direction, error) {
	return compass.Parse(s)
}

// NeighborMap is a partial map from Direction to a cell offset. Directions
// without an entry are undefined for the cells the map describes.
//
// The zero value is an empty map. Maps are small values and are built once
// per topology with Define.
type NeighborMap[C any] struct {
	set     DirectionSet
	offsets [compass.Count]C
}

// Define returns a copy of m with d mapped to off. Invalid directions are
// ignored.
func (m NeighborMap[C]) Define(d Direction, off C) NeighborMap[C] {
	if !d.Valid() {
		return m
	}
	m.set = m.set.With(d)
	m.offsets[d] = off
	return m
}

// Offset returns the offset for d and whether d is defined.
func (m NeighborMap[C]) Offset(d Direction) (C, bool) {
	if !m.set.Contains(d) {
		var zero C
		return zero, false
	}
	return m.offsets[d], true
}

// Directions returns the defined directions.
func (m NeighborMap[C]) Directions() DirectionSet {
	return m.set
}

// Len returns the number of defined directions.
func (m NeighborMap[C]) Len() int {
	return m.set.Len()
}

// All iterates the defined directions and their offsets in compass order.
func (m NeighborMap[C]) All() iter.Seq2[Direction, C] {
	return func(yield func(Direction, C) bool) {
		for d := range m.set.All() {
			if !yield(d, m.offsets[d]) {
				return
			}
		}
	}
}

// Mirror returns the map a point-reflected cell uses: every direction is
// replaced by its opposite and every offset by neg(offset).
func (m NeighborMap[C]) Mirror(neg func(C) C) NeighborMap[C] {
	var out NeighborMap[C]
	for d, off := range m.All() {
		out = out.Define(d.Opposite(), neg(off))
	}
	return out
}

// fromDeltas builds a map from the compass unit steps of the directions in
// set, converting each (dx, dy) with mk.
func fromDeltas[C any](set DirectionSet, mk func(dx, dy int) C) NeighborMap[C] {
	var m NeighborMap[C]
	for d := range set.All() {
		dx, dy := d.Delta()
		m = m.Define(d, mk(dx, dy))
	}
	return m
}
