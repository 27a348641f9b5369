package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ztrix/internal/platform/tui"
	"github.com/vovakirdan/ztrix/internal/registry"
	"github.com/vovakirdan/ztrix/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (marathon when omitted).

Modes:
  marathon - Endless play, speed rises every few lines
  sprint   - Clear the target number of lines as fast as you can
  ultra    - Score as much as possible before the clock runs out

Controls:
  Left/Right, A/D   - Move
  Down, S           - Soft drop
  Space             - Hard drop
  Up, X / Z         - Rotate clockwise / counter-clockwise
  V                 - Half turn
  C                 - Hold
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Leave (while paused or after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at level 1, progresses to max
  normal - Start at level 5, progresses to max
  hard   - Start at level 10, progresses to max
  fixed  - No progression, stays at the config's start level

Examples:
  ztrix play
  ztrix play sprint
  ztrix play ztrix_ultra --difficulty hard
  ztrix play --config ./my-ztrix.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode := "ztrix"
	if len(args) == 1 {
		mode = args[0]
	}

	gameID, err := resolveMode(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'ztrix list' to see available modes.")
		os.Exit(1)
	}

	applyGameFlags()
	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
