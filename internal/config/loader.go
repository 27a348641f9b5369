package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ztrix/internal/core"
	"github.com/vovakirdan/ztrix/internal/geom"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadZtrix loads the ztrix configuration.
// Search order: customPath -> ~/.ztrix/configs/ztrix.yaml -> ./configs/ztrix.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A file in the search path that fails to parse or validate
// is skipped; a custom path that fails is an error.
func LoadZtrix(customPath string) (ZtrixConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ZtrixConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseZtrix(data)
		if err != nil {
			return ZtrixConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ztrix.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseZtrix(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "ztrix.yaml")); err == nil {
		if cfg, err := ParseZtrix(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseZtrix(defaultZtrixYAML)
	if err != nil {
		return DefaultZtrixConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseZtrix decodes YAML over the default configuration and validates it.
func ParseZtrix(data []byte) (ZtrixConfig, error) {
	cfg := DefaultZtrixConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ZtrixConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ZtrixConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c ZtrixConfig) Validate() error {
	if c.Well.Width < 4 || c.Well.Height < 4 {
		return fmt.Errorf("%w: well must be at least 4x4, got %dx%d", ErrInvalidConfig, c.Well.Width, c.Well.Height)
	}
	if c.Well.HiddenRows < 0 || c.Well.Preview < 0 {
		return fmt.Errorf("%w: hidden_rows and preview must not be negative", ErrInvalidConfig)
	}
	if len(c.Pieces) == 0 {
		return fmt.Errorf("%w: at least one piece is required", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(c.Pieces))
	for _, p := range c.Pieces {
		if p.Name == "" {
			return fmt.Errorf("%w: piece without a name", ErrInvalidConfig)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate piece %q", ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true

		if _, ok := core.ParseColor(p.Color); !ok {
			return fmt.Errorf("%w: piece %q has unknown color %q", ErrInvalidConfig, p.Name, p.Color)
		}
		if p.Box < 1 || p.Box > c.Well.Width {
			return fmt.Errorf("%w: piece %q box %d does not fit a well %d wide", ErrInvalidConfig, p.Name, p.Box, c.Well.Width)
		}
		region, err := p.Region()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		box := geom.MustRect(0, 0, p.Box, p.Box)
		if !box.ContainsRegion(region) {
			return fmt.Errorf("%w: piece %q cells %s lie outside its %dx%d box", ErrInvalidConfig, p.Name, region, p.Box, p.Box)
		}
	}

	if _, err := c.KickOffsets(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Modes.SprintLines < 1 || c.Modes.UltraSeconds < 1 {
		return fmt.Errorf("%w: sprint_lines and ultra_seconds must be positive", ErrInvalidConfig)
	}
	if len(c.Scoring.LinePoints) == 0 {
		return fmt.Errorf("%w: scoring.line_points must not be empty", ErrInvalidConfig)
	}
	if c.Difficulty.StartLevel < 1 || c.Difficulty.MaxLevel < c.Difficulty.StartLevel {
		return fmt.Errorf("%w: levels must satisfy 1 <= start_level <= max_level", ErrInvalidConfig)
	}
	if c.Difficulty.LinesPerLevel < 1 {
		return fmt.Errorf("%w: lines_per_level must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ztrix", "configs", filename)
}
