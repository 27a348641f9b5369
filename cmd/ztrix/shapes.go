package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ztrix/internal/config"
	"github.com/vovakirdan/ztrix/internal/core"
	"github.com/vovakirdan/ztrix/internal/games/ztrix"
	"github.com/vovakirdan/ztrix/internal/geom"
	"github.com/vovakirdan/ztrix/internal/platform/tui"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the configured pieces in every rotation",
	Long: `Print every piece from the active config in its four orientations,
with the bounding rectangle of each. Useful when writing a custom
piece set.

Examples:
  ztrix shapes
  ztrix shapes --config ./my-ztrix.yaml`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

var (
	shapeNameStyle  = lipgloss.NewStyle().Bold(true)
	shapeLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	shapeCellStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func runShapes(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadZtrix(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	shapes, err := ztrix.LoadShapes(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, s := range shapes {
		fmt.Println(renderShape(s))
	}
}

// renderShape lays out the four orientations of a shape side by side.
func renderShape(s ztrix.Shape) string {
	panels := make([]string, 0, len(geom.Rotations))
	for _, r := range geom.Rotations {
		state := s.State(r)
		label := shapeLabelStyle.Render(fmt.Sprintf("%-4s %s", r, state.Bounds()))
		panels = append(panels, lipgloss.JoinVertical(lipgloss.Left, label, shapeCellStyle.Render(drawState(s, state))))
	}

	title := shapeNameStyle.Render(fmt.Sprintf("%s (%s, box %d)", s.Name, s.Color, s.Box))
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, panels...))
}

// drawState draws one orientation inside its box with Y pointing up.
func drawState(s ztrix.Shape, state geom.SetRegion) string {
	screen := core.NewScreen(s.Box*2, s.Box)
	for y := range s.Box {
		screen.DrawText(0, y, strings.Repeat(" .", s.Box))
	}

	flipped, err := geom.CollectSetRegion(func(yield func(geom.Coordinate) bool) {
		for p := range state.All() {
			if !yield(geom.C(p.X, s.Box-1-p.Y)) {
				return
			}
		}
	})
	if err == nil {
		screen.DrawRegion(flipped, geom.Origin, "[]", s.Color)
	}
	return tui.RenderScreen(screen)
}
