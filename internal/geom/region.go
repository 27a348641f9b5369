package geom

import (
	"errors"
	"iter"
)

var (
	// ErrInvalidArgument reports a construction that would produce an empty
	// or degenerate region.
	ErrInvalidArgument = errors.New("geom: invalid argument")

	// ErrExhausted is returned by Iterator.Next once every position was consumed.
	ErrExhausted = errors.New("geom: iterator exhausted")
)

// Region is a finite, non-empty, immutable set of grid coordinates.
// Rectangle and SetRegion are the two implementations.
type Region interface {
	// Count returns the number of distinct coordinates.
	Count() int

	// Contains reports whether position is a member.
	Contains(position Coordinate) bool

	// Bounds returns the tightest rectangle holding every member.
	Bounds() Rectangle

	// All yields every member exactly once, in an order that is stable for
	// the lifetime of the region. The sequence can be ranged over repeatedly.
	All() iter.Seq[Coordinate]

	// Iterator returns a fresh cursor over the same sequence as All.
	Iterator() *Iterator

	// Translate returns a new region with every member shifted by offset.
	Translate(offset Coordinate) Region

	// Rotate returns a new region with every member rotated around center.
	Rotate(direction Rotation, center Coordinate) Region
}

// Iterator walks the members of a region one at a time.
type Iterator struct {
	count int
	index int
	at    func(i int) Coordinate
}

func newIterator(count int, at func(i int) Coordinate) *Iterator {
	return &Iterator{count: count, at: at}
}

// HasNext reports whether Next will return another position.
func (it *Iterator) HasNext() bool {
	return it.index < it.count
}

// Next returns the next position, or ErrExhausted when there is none.
func (it *Iterator) Next() (Coordinate, error) {
	if !it.HasNext() {
		return Coordinate{}, ErrExhausted
	}
	p := it.at(it.index)
	it.index++
	return p, nil
}

// Translate shifts every member of r by offset.
// The result is always a SetRegion with the same count as r.
func Translate(r Region, offset Coordinate) SetRegion {
	return transform(r, func(p Coordinate) Coordinate {
		return p.Plus(offset)
	})
}

// Rotate turns every member of r around center.
// The result is always a SetRegion with the same count as r.
func Rotate(r Region, direction Rotation, center Coordinate) SetRegion {
	return transform(r, func(p Coordinate) Coordinate {
		return p.Rotate(direction, center)
	})
}

// transform maps each member through f. f must be injective, which holds for
// translations and rotations, so the count is preserved.
func transform(r Region, f func(Coordinate) Coordinate) SetRegion {
	positions := make([]Coordinate, 0, r.Count())
	for p := range r.All() {
		positions = append(positions, f(p))
	}
	return MustSetRegion(positions...)
}

// Equal reports whether a and b hold the same coordinates, regardless of
// their representation.
func Equal(a, b Region) bool {
	if a.Count() != b.Count() || a.Bounds() != b.Bounds() {
		return false
	}
	for p := range a.All() {
		if !b.Contains(p) {
			return false
		}
	}
	return true
}

// Overlaps reports whether a and b share at least one coordinate.
func Overlaps(a, b Region) bool {
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}
	// Walk the smaller region, probe the larger one.
	if a.Count() > b.Count() {
		a, b = b, a
	}
	for p := range a.All() {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// Union merges the members of every region into one SetRegion.
// It fails with ErrInvalidArgument when no region is given.
func Union(regions ...Region) (SetRegion, error) {
	return CollectSetRegion(func(yield func(Coordinate) bool) {
		for _, r := range regions {
			for p := range r.All() {
				if !yield(p) {
					return
				}
			}
		}
	})
}
