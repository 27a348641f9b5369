// Package config provides YAML-based game configuration loading and
// difficulty management for ztrix.
package config

import (
	"fmt"

	"github.com/vovakirdan/ztrix/internal/geom"
)

// ZtrixConfig contains all configuration for the falling-block game.
type ZtrixConfig struct {
	Well       WellConfig       `yaml:"well"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Modes      ModesConfig      `yaml:"modes"`
	Kicks      [][]int          `yaml:"kicks"` // Offsets tried in order when a rotation collides
	Pieces     []PieceConfig    `yaml:"pieces"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WellConfig defines the playfield dimensions.
type WellConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`      // Visible rows
	HiddenRows int `yaml:"hidden_rows"` // Buffer rows above the visible field
	Preview    int `yaml:"preview"`     // Number of upcoming pieces shown
}

// TimingConfig defines tick-based timing.
type TimingConfig struct {
	GravityTicks   []int `yaml:"gravity_ticks"`    // Ticks per row for each level; the last entry repeats
	LockDelay      int   `yaml:"lock_delay"`       // Ticks a grounded piece waits before locking
	LockResets     int   `yaml:"lock_resets"`      // Moves that may restart the lock delay per piece
	LineClearDelay int   `yaml:"line_clear_delay"` // Ticks the cleared rows stay highlighted
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	LinePoints     []int `yaml:"line_points"`      // Indexed by rows cleared at once, multiplied by level
	SoftDropPoints int   `yaml:"soft_drop_points"` // Per row
	HardDropPoints int   `yaml:"hard_drop_points"` // Per row
}

// ModesConfig defines the goals of the timed and target modes.
type ModesConfig struct {
	SprintLines  int `yaml:"sprint_lines"`
	UltraSeconds int `yaml:"ultra_seconds"`
}

// PieceConfig defines one piece shape in its spawn orientation.
// Cells are given with Y pointing up inside a Box x Box square; the piece
// rotates around the center of that square.
type PieceConfig struct {
	Name  string  `yaml:"name"`
	Color string  `yaml:"color"`
	Box   int     `yaml:"box"`
	Cells [][]int `yaml:"cells"`
}

// DifficultyConfig defines level progression.
type DifficultyConfig struct {
	Enabled       bool `yaml:"enabled"`         // false keeps the start level for the whole game
	StartLevel    int  `yaml:"start_level"`     // 1-based
	MaxLevel      int  `yaml:"max_level"`       // Level stops increasing here
	LinesPerLevel int  `yaml:"lines_per_level"` // Lines needed to advance one level
}

// Region converts the piece cells into a geometry region.
func (p PieceConfig) Region() (geom.SetRegion, error) {
	cells := make([]geom.Coordinate, 0, len(p.Cells))
	for i, c := range p.Cells {
		if len(c) != 2 {
			return geom.SetRegion{}, fmt.Errorf("config: piece %q cell %d: expected [x, y], got %v", p.Name, i, c)
		}
		cells = append(cells, geom.C(c[0], c[1]))
	}

	region, err := geom.NewSetRegion(cells...)
	if err != nil {
		return geom.SetRegion{}, fmt.Errorf("config: piece %q: %w", p.Name, err)
	}
	return region, nil
}

// KickOffsets returns the configured wall kicks as coordinates.
func (c ZtrixConfig) KickOffsets() ([]geom.Coordinate, error) {
	offsets := make([]geom.Coordinate, 0, len(c.Kicks))
	for i, k := range c.Kicks {
		if len(k) != 2 {
			return nil, fmt.Errorf("config: kick %d: expected [x, y], got %v", i, k)
		}
		offsets = append(offsets, geom.C(k[0], k[1]))
	}
	return offsets, nil
}

// Gravity returns the ticks per row for a 1-based level.
func (t TimingConfig) Gravity(level int) int {
	if len(t.GravityTicks) == 0 {
		return 1
	}
	i := min(max(level-1, 0), len(t.GravityTicks)-1)
	return max(1, t.GravityTicks[i])
}

// Points returns the line clear award for n rows at the given level.
func (s ScoringConfig) Points(n, level int) int {
	if n <= 0 || len(s.LinePoints) == 0 {
		return 0
	}
	n = min(n, len(s.LinePoints)-1)
	return s.LinePoints[n] * max(level, 1)
}
