package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name from the command line.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ZtrixConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.StartLevel = min(StartLevelForPreset(preset), cfg.Difficulty.MaxLevel)
}

// Leveler tracks level progression from cleared lines.
type Leveler struct {
	cfg DifficultyConfig
}

// NewLeveler creates a leveler for the given difficulty settings.
func NewLeveler(cfg DifficultyConfig) *Leveler {
	return &Leveler{cfg: cfg}
}

// Level returns the level reached after clearing the given number of lines.
func (l *Leveler) Level(lines int) int {
	start := max(l.cfg.StartLevel, 1)
	if !l.cfg.Enabled || l.cfg.LinesPerLevel <= 0 {
		return start
	}
	level := start + lines/l.cfg.LinesPerLevel
	if l.cfg.MaxLevel > 0 {
		level = min(level, l.cfg.MaxLevel)
	}
	return level
}
