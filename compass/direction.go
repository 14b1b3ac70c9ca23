// Package compass provides the eight compass directions used to name
// movement between neighboring grid cells.
//
// Directions are ordered counter-clockwise starting at East so that the
// numeric value times π/4 is the direction's angle in radians, with y
// pointing up.
package compass

import (
	"fmt"
	"math"
	"strings"
)

// Count is the number of compass directions.
const Count = 8

// Direction is one of the eight cardinal and ordinal compass directions.
type Direction uint8

// Directions in counter-clockwise order.
const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

var names = [Count]string{
	"East", "NorthEast", "North", "NorthWest",
	"West", "SouthWest", "South", "SouthEast",
}

var abbreviations = [Count]string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}

// deltas are unit steps on a y-up lattice.
var deltas = [Count][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool {
	return d < Count
}

// String returns the direction name, e.g. "NorthEast".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// Abbrev returns the short name, e.g. "NE".
func (d Direction) Abbrev() string {
	if !d.Valid() {
		return "?"
	}
	return abbreviations[d]
}

// Rotate returns the direction steps eighth-turns away from d.
// Positive steps turn counter-clockwise, negative steps clockwise.
func (d Direction) Rotate(steps int) Direction {
	v := (int(d) + steps) % Count
	if v < 0 {
		v += Count
	}
	return Direction(v)
}

// Clockwise returns the next direction clockwise from d.
func (d Direction) Clockwise() Direction { return d.Rotate(-1) }

// CounterClockwise returns the next direction counter-clockwise from d.
func (d Direction) CounterClockwise() Direction { return d.Rotate(1) }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return d.Rotate(Count / 2) }

// IsCardinal reports whether d is East, North, West or South.
func (d Direction) IsCardinal() bool { return d.Valid() && d%2 == 0 }

// IsOrdinal reports whether d is one of the diagonal directions.
func (d Direction) IsOrdinal() bool { return d.Valid() && d%2 == 1 }

// Angle returns the direction's angle in radians, in [0, 2π).
func (d Direction) Angle() float64 {
	return float64(d) * math.Pi / 4
}

// Delta returns the unit lattice step for d on a y-up square lattice.
// Ordinal directions step on both axes.
func (d Direction) Delta() (dx, dy int) {
	v := deltas[d%Count]
	return v[0], v[1]
}

// FromAngle returns the direction nearest to angle (radians).
// Angles exactly between two directions resolve counter-clockwise.
func FromAngle(angle float64) Direction {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return Direction(int(math.Floor(a/(math.Pi/4)+0.5)) % Count)
}

// Parse accepts a full name or an abbreviation, case-insensitively.
func Parse(s string) (Direction, error) {
	for i := range Count {
		if strings.EqualFold(s, names[i]) || strings.EqualFold(s, abbreviations[i]) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("compass: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("compass: invalid direction %d", uint8(d))
	}
	return []byte(names[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
