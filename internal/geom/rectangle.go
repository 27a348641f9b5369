package geom

import (
	"fmt"
	"iter"
)

// Rectangle is an axis-aligned half-open box: the minimum corner is
// inclusive, the maximum corner exclusive. It is the dense Region.
//
// The zero value is degenerate and not a valid region; build rectangles with
// NewRect, NewRectangle or MustRect.
type Rectangle struct {
	min Coordinate
	max Coordinate
}

// NewRectangle creates the rectangle spanning [minimum, maximum).
// Both dimensions must be at least one cell.
func NewRectangle(minimum, maximum Coordinate) (Rectangle, error) {
	if maximum.X <= minimum.X || maximum.Y <= minimum.Y {
		return Rectangle{}, fmt.Errorf("%w: rectangle maximum %s must exceed minimum %s on both axes",
			ErrInvalidArgument, maximum, minimum)
	}
	return Rectangle{min: minimum, max: maximum}, nil
}

// NewRect creates a rectangle from raw corner components.
func NewRect(minX, minY, maxX, maxY int) (Rectangle, error) {
	return NewRectangle(Coordinate{X: minX, Y: minY}, Coordinate{X: maxX, Y: maxY})
}

// MustRect is like NewRect but panics on invalid corners.
// Intended for fixed layouts known to be valid.
func MustRect(minX, minY, maxX, maxY int) Rectangle {
	r, err := NewRect(minX, minY, maxX, maxY)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the inclusive minimum corner.
func (r Rectangle) Min() Coordinate {
	return r.min
}

// Max returns the exclusive maximum corner.
func (r Rectangle) Max() Coordinate {
	return r.max
}

// Width returns the number of columns.
func (r Rectangle) Width() int {
	return r.max.X - r.min.X
}

// Height returns the number of rows.
func (r Rectangle) Height() int {
	return r.max.Y - r.min.Y
}

// Count returns the number of cells in the rectangle.
func (r Rectangle) Count() int {
	return r.Width() * r.Height()
}

// Contains reports whether position lies inside the half-open box.
func (r Rectangle) Contains(position Coordinate) bool {
	return position.X >= r.min.X && position.X < r.max.X &&
		position.Y >= r.min.Y && position.Y < r.max.Y
}

// ContainsRegion reports whether every member of other lies inside r.
// Bounds are tight, so comparing them is equivalent to checking each member.
func (r Rectangle) ContainsRegion(other Region) bool {
	b := other.Bounds()
	return b.min.X >= r.min.X && b.min.Y >= r.min.Y &&
		b.max.X <= r.max.X && b.max.Y <= r.max.Y
}

// Intersects reports whether the two rectangles share at least one cell.
func (r Rectangle) Intersects(other Rectangle) bool {
	if r.min.X >= other.max.X || other.min.X >= r.max.X {
		return false
	}
	if r.min.Y >= other.max.Y || other.min.Y >= r.max.Y {
		return false
	}
	return true
}

// Center returns the cell at the middle of the rectangle, rounding toward
// the minimum corner.
func (r Rectangle) Center() Coordinate {
	return Coordinate{X: r.min.X + r.Width()/2, Y: r.min.Y + r.Height()/2}
}

// Bounds returns r itself.
func (r Rectangle) Bounds() Rectangle {
	return r
}

// Shift returns the rectangle moved by offset, keeping its size.
func (r Rectangle) Shift(offset Coordinate) Rectangle {
	return Rectangle{min: r.min.Plus(offset), max: r.max.Plus(offset)}
}

// All yields the cells row by row, top to bottom and left to right.
func (r Rectangle) All() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for y := r.min.Y; y < r.max.Y; y++ {
			for x := r.min.X; x < r.max.X; x++ {
				if !yield(Coordinate{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Iterator returns a cursor over the cells in the same order as All.
func (r Rectangle) Iterator() *Iterator {
	w := r.Width()
	return newIterator(r.Count(), func(i int) Coordinate {
		return Coordinate{X: r.min.X + i%w, Y: r.min.Y + i/w}
	})
}

// Translate returns the cells shifted by offset as a SetRegion.
// Use Shift to keep a Rectangle.
func (r Rectangle) Translate(offset Coordinate) Region {
	return Translate(r, offset)
}

// Rotate returns the cells rotated around center as a SetRegion.
func (r Rectangle) Rotate(direction Rotation, center Coordinate) Region {
	return Rotate(r, direction, center)
}

// String returns the rectangle as "Rect[(minX, minY) - (maxX, maxY)]".
func (r Rectangle) String() string {
	return fmt.Sprintf("Rect[%s - %s]", r.min, r.max)
}
