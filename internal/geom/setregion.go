package geom

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// SetRegion is an arbitrary finite set of coordinates, the sparse Region.
// Members keep the order in which they were first seen, and the bounding
// rectangle is computed once at construction.
//
// The zero value is empty and not a valid region; build sets with
// NewSetRegion, CollectSetRegion or MustSetRegion.
type SetRegion struct {
	positions []Coordinate
	members   map[Coordinate]struct{}
	bounds    Rectangle
}

// NewSetRegion creates a region from the given positions.
// Duplicates collapse; at least one position is required.
func NewSetRegion(positions ...Coordinate) (SetRegion, error) {
	return CollectSetRegion(func(yield func(Coordinate) bool) {
		for _, p := range positions {
			if !yield(p) {
				return
			}
		}
	})
}

// CollectSetRegion creates a region from every position in seq.
func CollectSetRegion(seq iter.Seq[Coordinate]) (SetRegion, error) {
	s := SetRegion{members: make(map[Coordinate]struct{})}

	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for p := range seq {
		if _, seen := s.members[p]; seen {
			continue
		}
		s.members[p] = struct{}{}
		s.positions = append(s.positions, p)

		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	if len(s.positions) == 0 {
		return SetRegion{}, fmt.Errorf("%w: set region needs at least one position", ErrInvalidArgument)
	}

	bounds, err := NewRect(minX, minY, maxX+1, maxY+1)
	if err != nil {
		return SetRegion{}, err
	}
	s.bounds = bounds
	return s, nil
}

// MustSetRegion is like NewSetRegion but panics when positions is empty.
func MustSetRegion(positions ...Coordinate) SetRegion {
	s, err := NewSetRegion(positions...)
	if err != nil {
		panic(err)
	}
	return s
}

// Count returns the number of distinct members.
func (s SetRegion) Count() int {
	return len(s.positions)
}

// Contains reports whether position is a member.
func (s SetRegion) Contains(position Coordinate) bool {
	_, ok := s.members[position]
	return ok
}

// Bounds returns the bounding rectangle computed at construction.
func (s SetRegion) Bounds() Rectangle {
	return s.bounds
}

// All yields the members in first-insertion order.
func (s SetRegion) All() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, p := range s.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// Iterator returns a cursor over the members in the same order as All.
func (s SetRegion) Iterator() *Iterator {
	return newIterator(len(s.positions), func(i int) Coordinate {
		return s.positions[i]
	})
}

// Translate returns a new region shifted by offset.
func (s SetRegion) Translate(offset Coordinate) Region {
	return Translate(s, offset)
}

// Rotate returns a new region rotated around center.
func (s SetRegion) Rotate(direction Rotation, center Coordinate) Region {
	return Rotate(s, direction, center)
}

// String lists the members as "Set{(x, y), ...}".
func (s SetRegion) String() string {
	parts := make([]string, len(s.positions))
	for i, p := range s.positions {
		parts[i] = p.String()
	}
	return "Set{" + strings.Join(parts, ", ") + "}"
}
