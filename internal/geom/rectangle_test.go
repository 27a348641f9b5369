package geom

import (
	"errors"
	"testing"
)

// testRectangles returns every rectangle with corners in [-2, 2] and checks
// that each one contains exactly the cells of its half-open span.
func testRectangles() []Rectangle {
	var rects []Rectangle
	for minX := -2; minX < 2; minX++ {
		for minY := -2; minY < 2; minY++ {
			for maxX := minX + 1; maxX < 3; maxX++ {
				for maxY := minY + 1; maxY < 3; maxY++ {
					rects = append(rects, MustRect(minX, minY, maxX, maxY))
				}
			}
		}
	}
	return rects
}

func TestRectangleConstructor(t *testing.T) {
	for _, r := range testRectangles() {
		built, err := NewRectangle(r.Min(), r.Max())
		if err != nil {
			t.Fatalf("NewRectangle(%v, %v) failed: %v", r.Min(), r.Max(), err)
		}
		if built.Min() != r.Min() {
			t.Errorf("%v.Min() = %v, expected %v", built, built.Min(), r.Min())
		}
		if built.Max() != r.Max() {
			t.Errorf("%v.Max() = %v, expected %v", built, built.Max(), r.Max())
		}
		for _, p := range testCoordinates() {
			inside := p.X >= r.Min().X && p.X < r.Max().X && p.Y >= r.Min().Y && p.Y < r.Max().Y
			if built.Contains(p) != inside {
				t.Errorf("%v.Contains(%v) = %v, expected %v", built, p, built.Contains(p), inside)
			}
		}
	}
}

func TestRectangleConstructorInvalid(t *testing.T) {
	for i := -10; i <= 0; i++ {
		if _, err := NewRectangle(Origin, C(i, 1)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewRectangle(Origin, %v) error = %v, expected ErrInvalidArgument", C(i, 1), err)
		}
		if _, err := NewRectangle(Origin, C(1, i)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewRectangle(Origin, %v) error = %v, expected ErrInvalidArgument", C(1, i), err)
		}
	}
}

func TestMustRectPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRect() with an empty span should panic")
		}
	}()
	MustRect(0, 0, 0, 1)
}

func TestRectangleKnownValues(t *testing.T) {
	r := MustRect(-1, -1, 2, 2)

	tests := []struct {
		name     string
		p        Coordinate
		expected bool
	}{
		{"min corner inclusive", C(-1, -1), true},
		{"center", C(0, 0), true},
		{"last cell", C(1, 1), true},
		{"max corner exclusive", C(2, 2), false},
		{"right edge", C(2, 0), false},
		{"bottom edge", C(0, 2), false},
		{"far outside", C(4, 5), false},
		{"left of min", C(-2, -2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if r.Count() != 9 {
		t.Errorf("Count() = %d, expected 9", r.Count())
	}
	if r.Width() != 3 || r.Height() != 3 {
		t.Errorf("Width(), Height() = %d, %d, expected 3, 3", r.Width(), r.Height())
	}
	if c := r.Center(); c != Origin {
		t.Errorf("Center() = %v, expected %v", c, Origin)
	}
}

func TestRectangleContainsRegion(t *testing.T) {
	r := MustRect(-1, -1, 2, 2)

	if !r.ContainsRegion(r) {
		t.Errorf("%v.ContainsRegion(itself) = false, expected true", r)
	}

	for p := range r.All() {
		cell := MustRect(p.X, p.Y, p.X+1, p.Y+1)
		if !r.ContainsRegion(cell) {
			t.Errorf("ContainsRegion(%v) = false, expected true", cell)
		}
	}

	outside := []Region{
		MustRect(-2, -2, 1, 1),
		MustRect(-2, 0, 0, 1),
		MustRect(0, -2, 1, 0),
		MustRect(0, 1, 1, 3),
		MustRect(1, 0, 3, 1),
		MustRect(-4, -4, 5, 5),
		MustSetRegion(C(0, 0), C(2, 0)),
		MustSetRegion(C(-1, -1), C(1, 1), C(1, -2)),
	}
	for _, other := range outside {
		if r.ContainsRegion(other) {
			t.Errorf("ContainsRegion(%v) = true, expected false", other)
		}
	}

	inside := []Region{
		MustSetRegion(C(-1, -1), C(1, 1)),
		MustSetRegion(C(0, 0)),
		MustSetRegion(C(-1, 1), C(1, -1), C(0, 0)),
	}
	for _, other := range inside {
		if !r.ContainsRegion(other) {
			t.Errorf("ContainsRegion(%v) = false, expected true", other)
		}
	}
}

func TestRectangleContainsRegionMatchesMembers(t *testing.T) {
	container := MustRect(-1, -1, 2, 2)
	for _, other := range testRegions() {
		expected := true
		for p := range other.All() {
			if !container.Contains(p) {
				expected = false
				break
			}
		}
		if got := container.ContainsRegion(other); got != expected {
			t.Errorf("ContainsRegion(%v) = %v, expected %v", other, got, expected)
		}
	}
}

func TestRectangleIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rectangle
		expected bool
	}{
		{"overlapping", MustRect(0, 0, 10, 10), MustRect(5, 5, 15, 15), true},
		{"non-overlapping horizontal", MustRect(0, 0, 10, 10), MustRect(15, 0, 25, 10), false},
		{"adjacent horizontal", MustRect(0, 0, 10, 10), MustRect(10, 0, 20, 10), false},
		{"adjacent vertical", MustRect(0, 0, 10, 10), MustRect(0, 10, 10, 20), false},
		{"contained", MustRect(0, 0, 20, 20), MustRect(5, 5, 10, 10), true},
		{"single cell overlap", MustRect(0, 0, 10, 10), MustRect(9, 9, 19, 19), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectangleShift(t *testing.T) {
	r := MustRect(0, 0, 3, 2)
	shifted := r.Shift(C(-4, 7))
	if want := MustRect(-4, 7, -1, 9); shifted != want {
		t.Errorf("Shift() = %v, expected %v", shifted, want)
	}
	if shifted.Count() != r.Count() {
		t.Errorf("Shift().Count() = %d, expected %d", shifted.Count(), r.Count())
	}
}

func TestRectangleRowMajorOrder(t *testing.T) {
	r := MustRect(1, 1, 3, 3)
	expected := []Coordinate{C(1, 1), C(2, 1), C(1, 2), C(2, 2)}

	i := 0
	for p := range r.All() {
		if i >= len(expected) || p != expected[i] {
			t.Fatalf("All() position %d = %v, expected %v", i, p, expected)
		}
		i++
	}
}

func TestRectangleEquality(t *testing.T) {
	for _, r := range testRectangles() {
		minX, minY := r.Min().X, r.Min().Y
		maxX, maxY := r.Max().X, r.Max().Y

		if MustRect(minX, minY, maxX, maxY) != r {
			t.Errorf("%v should equal a rectangle with the same corners", r)
		}
		if MustRect(minX-1, minY-1, maxX, maxY) == r {
			t.Errorf("%v should not equal a rectangle with a smaller minimum", r)
		}
		if MustRect(minX, minY, maxX+1, maxY+1) == r {
			t.Errorf("%v should not equal a rectangle with a larger maximum", r)
		}
	}

	// Comparable values hash by corners.
	set := map[Rectangle]bool{MustRect(0, 0, 1, 1): true}
	if !set[MustRect(0, 0, 1, 1)] {
		t.Error("Rectangle map lookup by equal value failed")
	}
}

func TestRectangleString(t *testing.T) {
	tests := []struct {
		rect     Rectangle
		expected string
	}{
		{MustRect(0, 0, 1, 1), "Rect[(0, 0) - (1, 1)]"},
		{MustRect(-2, -3, 4, 5), "Rect[(-2, -3) - (4, 5)]"},
		{MustRect(5, -14, 7, 8), "Rect[(5, -14) - (7, 8)]"},
		{MustRect(-69, -4, 20, -3), "Rect[(-69, -4) - (20, -3)]"},
	}

	for _, tc := range tests {
		if got := tc.rect.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
