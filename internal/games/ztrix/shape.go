package ztrix

import (
	"fmt"

	"github.com/vovakirdan/ztrix/internal/config"
	"github.com/vovakirdan/ztrix/internal/core"
	"github.com/vovakirdan/ztrix/internal/geom"
)

// Shape is a piece definition with its four orientations precomputed.
// Every orientation lives inside the same Box x Box square anchored at the
// origin, so a piece keeps its place in the well while it turns.
type Shape struct {
	Name   string
	Color  core.Color
	Box    int
	states [4]geom.SetRegion
}

// evenBoxCorrection re-centres a rotation performed around the integer
// pivot ((n-1)/2, (n-1)/2) of an even-sized box, whose true centre sits half
// a cell up and to the right.
var evenBoxCorrection = [4]geom.Coordinate{
	geom.R0:   {X: 0, Y: 0},
	geom.CW:   {X: 0, Y: 1},
	geom.R180: {X: 1, Y: 1},
	geom.CCW:  {X: 1, Y: 0},
}

// NewShape builds a shape from its spawn orientation.
func NewShape(name string, color core.Color, box int, spawn geom.SetRegion) (Shape, error) {
	square, err := geom.NewRect(0, 0, box, box)
	if err != nil {
		return Shape{}, fmt.Errorf("shape %q: %w", name, err)
	}
	if !square.ContainsRegion(spawn) {
		return Shape{}, fmt.Errorf("shape %q: cells %s exceed %s", name, spawn, square)
	}

	s := Shape{Name: name, Color: color, Box: box}
	pivot := geom.C((box-1)/2, (box-1)/2)
	for _, r := range geom.Rotations {
		state := geom.Rotate(spawn, r, pivot)
		if box%2 == 0 {
			state = geom.Translate(state, evenBoxCorrection[r])
		}
		s.states[r] = state
	}
	return s, nil
}

// State returns the cells of the given orientation relative to the box origin.
func (s Shape) State(r geom.Rotation) geom.SetRegion {
	return s.states[r%4]
}

// LoadShapes converts the configured pieces into shapes, in config order.
func LoadShapes(cfg config.ZtrixConfig) ([]Shape, error) {
	shapes := make([]Shape, 0, len(cfg.Pieces))
	for _, p := range cfg.Pieces {
		spawn, err := p.Region()
		if err != nil {
			return nil, err
		}
		color, _ := core.ParseColor(p.Color)
		shape, err := NewShape(p.Name, color, p.Box, spawn)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}
