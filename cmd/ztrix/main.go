// ztrix is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	ztrix list              - List available modes
//	ztrix play [mode]       - Play a mode (default: marathon)
//	ztrix menu              - Start menu to pick modes interactively
//	ztrix serve             - Start SSH server for remote play
//	ztrix scores <mode>     - Show high scores for a mode
//	ztrix shapes            - Print the configured pieces in every rotation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.ztrix/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ztrix/internal/config"
	"github.com/vovakirdan/ztrix/internal/core"
	"github.com/vovakirdan/ztrix/internal/games/ztrix"
	"github.com/vovakirdan/ztrix/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

// logger reports non-fatal problems on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "ztrix",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ztrix",
	Short: "Ztrix - falling blocks in your terminal",
	Long: `Ztrix is a falling-block puzzle game for the terminal.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  shapes   - Print the configured pieces

Examples:
  ztrix list
  ztrix play
  ztrix play sprint --difficulty hard
  ztrix menu
  ztrix serve --ssh :2222
  ztrix scores ztrix_ultra`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ztrix/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shapesCmd)
}

// applyGameFlags hands --config and --difficulty to the game package and
// warns when either will be ignored.
func applyGameFlags() {
	if flagDifficulty != "" {
		if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
			logger.Warn("ignoring difficulty", "error", err)
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadZtrix(flagConfig); err != nil {
			logger.Warn("config not usable, playing with defaults", "path", flagConfig, "error", err)
		}
	}

	ztrix.SetConfigPath(flagConfig)
	ztrix.SetDifficultyPreset(flagDifficulty)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// resolveMode accepts a registered ID or a bare mode name such as "sprint".
func resolveMode(name string) (string, error) {
	switch {
	case registry.Exists(name):
		return name, nil
	case name == string(ztrix.ModeMarathon):
		return "ztrix", nil
	case registry.Exists("ztrix_" + name):
		return "ztrix_" + name, nil
	}
	return "", fmt.Errorf("%w %q", registry.ErrUnknownGame, name)
}
