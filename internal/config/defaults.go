package config

import (
	_ "embed"
)

//go:embed defaults/ztrix.yaml
var defaultZtrixYAML []byte

// DefaultZtrixConfig returns the default ztrix configuration.
func DefaultZtrixConfig() ZtrixConfig {
	return ZtrixConfig{
		Well: WellConfig{
			Width:      10,
			Height:     20,
			HiddenRows: 4,
			Preview:    3,
		},
		Timing: TimingConfig{
			GravityTicks:   []int{60, 48, 37, 28, 21, 16, 11, 8, 6, 4, 3, 2, 2, 1, 1},
			LockDelay:      30,
			LockResets:     15,
			LineClearDelay: 12,
		},
		Scoring: ScoringConfig{
			LinePoints:     []int{0, 100, 300, 500, 800},
			SoftDropPoints: 1,
			HardDropPoints: 2,
		},
		Modes: ModesConfig{
			SprintLines:  40,
			UltraSeconds: 120,
		},
		Kicks: [][]int{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {-2, 0}, {2, 0}},
		Pieces: []PieceConfig{
			{Name: "I", Color: "cyan", Box: 4, Cells: [][]int{{0, 2}, {1, 2}, {2, 2}, {3, 2}}},
			{Name: "O", Color: "yellow", Box: 2, Cells: [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
			{Name: "T", Color: "magenta", Box: 3, Cells: [][]int{{0, 1}, {1, 1}, {2, 1}, {1, 2}}},
			{Name: "S", Color: "green", Box: 3, Cells: [][]int{{0, 1}, {1, 1}, {1, 2}, {2, 2}}},
			{Name: "Z", Color: "red", Box: 3, Cells: [][]int{{0, 2}, {1, 2}, {1, 1}, {2, 1}}},
			{Name: "J", Color: "blue", Box: 3, Cells: [][]int{{0, 2}, {0, 1}, {1, 1}, {2, 1}}},
			{Name: "L", Color: "orange", Box: 3, Cells: [][]int{{2, 2}, {0, 1}, {1, 1}, {2, 1}}},
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			StartLevel:    1,
			MaxLevel:      15,
			LinesPerLevel: 10,
		},
	}
}
