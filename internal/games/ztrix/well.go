package ztrix

import (
	"slices"

	"github.com/vovakirdan/ztrix/internal/core"
	"github.com/vovakirdan/ztrix/internal/geom"
)

// block is one settled cell.
type block struct {
	filled bool
	color  core.Color
}

// Well is the playfield. Row 0 is the floor and Y grows upwards; rows at
// or above Height() form the hidden buffer a piece may rotate into.
type Well struct {
	field   geom.Rectangle
	visible int
	rows    [][]block
}

// NewWell creates an empty well with the given visible size plus hidden rows.
func NewWell(width, height, hidden int) *Well {
	w := &Well{
		field:   geom.MustRect(0, 0, width, height+hidden),
		visible: height,
	}
	w.rows = make([][]block, height+hidden)
	for y := range w.rows {
		w.rows[y] = make([]block, width)
	}
	return w
}

// Field returns the full playfield rectangle including hidden rows.
func (w *Well) Field() geom.Rectangle {
	return w.field
}

// Width returns the number of columns.
func (w *Well) Width() int {
	return w.field.Width()
}

// Height returns the number of visible rows.
func (w *Well) Height() int {
	return w.visible
}

// Occupied reports whether a settled block sits at p.
func (w *Well) Occupied(p geom.Coordinate) bool {
	if !w.field.Contains(p) {
		return false
	}
	return w.rows[p.Y][p.X].filled
}

// Fits reports whether region lies inside the field without touching a
// settled block.
func (w *Well) Fits(region geom.Region) bool {
	if !w.field.ContainsRegion(region) {
		return false
	}
	for p := range region.All() {
		if w.rows[p.Y][p.X].filled {
			return false
		}
	}
	return true
}

// Lock settles every cell of region with the given color.
// Cells outside the field are dropped.
func (w *Well) Lock(region geom.Region, c core.Color) {
	for p := range region.All() {
		if w.field.Contains(p) {
			w.rows[p.Y][p.X] = block{filled: true, color: c}
		}
	}
}

// FullRows returns the completely filled rows, top to bottom.
func (w *Well) FullRows() []int {
	var full []int
	for y := len(w.rows) - 1; y >= 0; y-- {
		if !slices.ContainsFunc(w.rows[y], func(b block) bool { return !b.filled }) {
			full = append(full, y)
		}
	}
	return full
}

// ClearLines removes every full row, drops the rows above it and returns
// the removed row indices, top to bottom.
func (w *Well) ClearLines() []int {
	full := w.FullRows()
	if len(full) == 0 {
		return nil
	}

	kept := make([][]block, 0, len(w.rows))
	for y, row := range w.rows {
		if !slices.Contains(full, y) {
			kept = append(kept, row)
		}
	}
	for len(kept) < len(w.rows) {
		kept = append(kept, make([]block, w.Width()))
	}
	w.rows = kept
	return full
}

// StackHeight returns the number of rows up to the highest settled block.
func (w *Well) StackHeight() int {
	for y := len(w.rows) - 1; y >= 0; y-- {
		if slices.ContainsFunc(w.rows[y], func(b block) bool { return b.filled }) {
			return y + 1
		}
	}
	return 0
}

// Settled returns the region of all settled blocks, or false when the well
// is empty.
func (w *Well) Settled() (geom.SetRegion, bool) {
	region, err := geom.CollectSetRegion(func(yield func(geom.Coordinate) bool) {
		for y, row := range w.rows {
			for x, b := range row {
				if b.filled && !yield(geom.C(x, y)) {
					return
				}
			}
		}
	})
	return region, err == nil
}

// colorAt returns the color of the settled block at p.
func (w *Well) colorAt(p geom.Coordinate) core.Color {
	return w.rows[p.Y][p.X].color
}
