// Package geom provides the integer-grid geometry used by the game model:
// coordinates, quarter-turn rotations and regions (non-empty sets of cells)
// with bounding-box computation. It has no dependencies outside the standard
// library and every value it produces is immutable.
package geom

import "fmt"

// Coordinate is a point on the integer grid. Rotations are defined for a
// Y axis pointing up: CW turns (1, 0) into (0, -1).
type Coordinate struct {
	X int
	Y int
}

// Origin is the coordinate (0, 0).
var Origin = Coordinate{}

// Directions holds the four axis-aligned unit offsets.
var Directions = [4]Coordinate{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// C is a convenience constructor for Coordinate.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Plus returns the component-wise sum of two coordinates.
func (c Coordinate) Plus(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Minus returns the component-wise difference of two coordinates.
func (c Coordinate) Minus(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

// Negate returns the coordinate mirrored through the origin.
func (c Coordinate) Negate() Coordinate {
	return Origin.Minus(c)
}

// Rotate turns the coordinate around center by the given rotation.
func (c Coordinate) Rotate(direction Rotation, center Coordinate) Coordinate {
	return direction.Apply(c.Minus(center)).Plus(center)
}

// String returns the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
