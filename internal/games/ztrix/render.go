package ztrix

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/ztrix/internal/core"
	"github.com/vovakirdan/ztrix/internal/geom"
)

const (
	hudHeight  = 2
	sideWidth  = 12 // Hold and next panels, including their gap to the well
	blockGlyph = "[]"
	ghostGlyph = "::"
	clearGlyph = "=="
)

// cellWidth is the number of screen columns one well cell takes.
var cellWidth = runewidth.StringWidth(blockGlyph)

func (g *Game) wellWidth() int {
	return g.cfg.Well.Width*cellWidth + 2
}

func (g *Game) minWidth() int {
	return g.wellWidth() + 2*sideWidth
}

func (g *Game) minHeight() int {
	return hudHeight + g.cfg.Well.Height + 2
}

// flipRows maps the cells of region below ceiling to screen rows so that
// row 0 lands at the bottom. It reports false when no cell is below ceiling.
func flipRows(region geom.Region, ceiling int) (geom.SetRegion, bool) {
	flipped, err := geom.CollectSetRegion(func(yield func(geom.Coordinate) bool) {
		for p := range region.All() {
			if p.Y < ceiling && !yield(geom.C(p.X, ceiling-1-p.Y)) {
				return
			}
		}
	})
	return flipped, err == nil
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.minWidth(), g.minHeight()))
		return
	}

	wellLeft := (dst.Width() - g.wellWidth()) / 2
	g.renderWell(dst, wellLeft)
	g.renderHold(dst, wellLeft-sideWidth)
	g.renderStats(dst, wellLeft-sideWidth)
	g.renderNext(dst, wellLeft+g.wellWidth()+1)

	switch {
	case g.finished:
		g.renderOverlay(dst, g.finishTitle(), fmt.Sprintf("Score: %d  Press R", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Lines: %d  Level: %d", g.Title(), g.score, g.lines, g.level)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the frame, the settled stack and the falling piece.
func (g *Game) renderWell(dst *core.Screen, x int) {
	height := g.well.Height()
	frame := geom.MustRect(x, hudHeight, x+g.wellWidth(), hudHeight+height+2)
	dst.DrawBox(frame)
	origin := frame.Min().Plus(geom.C(1, 1))

	if settled, ok := g.well.Settled(); ok {
		for p := range settled.All() {
			if p.Y >= height {
				continue
			}
			dst.DrawColorText(origin.X+p.X*cellWidth, origin.Y+height-1-p.Y, blockGlyph, g.well.colorAt(p))
		}
	}

	if len(g.clearing) > 0 {
		for _, y := range g.clearing {
			if y >= height {
				continue
			}
			for col := range g.well.Width() {
				dst.DrawColorText(origin.X+col*cellWidth, origin.Y+height-1-y, clearGlyph, core.ColorBrightWhite)
			}
		}
		return
	}
	if g.gameOver {
		return
	}

	cells := g.cells(g.active)
	if d := g.dropDistance(); d > 0 {
		if ghost, ok := flipRows(geom.Translate(cells, geom.C(0, -d)), height); ok {
			dst.DrawRegion(ghost, origin, ghostGlyph, core.ColorGray)
		}
	}
	if active, ok := flipRows(cells, height); ok {
		dst.DrawRegion(active, origin, blockGlyph, g.shapes[g.active.shape].Color)
	}
}

// renderHold draws the held piece panel.
func (g *Game) renderHold(dst *core.Screen, x int) {
	panel := geom.MustRect(x, hudHeight, x+sideWidth-1, hudHeight+5)
	dst.DrawBox(panel)
	dst.DrawText(x+2, hudHeight, " HOLD ")
	if g.hold >= 0 {
		color := g.shapes[g.hold].Color
		if g.holdUsed {
			color = core.ColorGray
		}
		g.drawPreview(dst, g.hold, panel.Min().Plus(geom.C(2, 2)), color)
	}
}

// renderStats draws the progress counters under the hold panel.
func (g *Game) renderStats(dst *core.Screen, x int) {
	y := hudHeight + 6
	rows := [][2]string{
		{"SCORE", fmt.Sprint(g.score)},
		{"LINES", fmt.Sprint(g.lines)},
		{"LEVEL", fmt.Sprint(g.level)},
		{"TIME", formatClock(g.Seconds())},
	}
	switch g.mode {
	case ModeSprint:
		rows = append(rows, [2]string{"GOAL", fmt.Sprintf("%d left", max(0, g.cfg.Modes.SprintLines-g.lines))})
	case ModeUltra:
		rows = append(rows, [2]string{"LEFT", formatClock(max(0, g.cfg.Modes.UltraSeconds-g.Seconds()))})
	}

	for _, row := range rows {
		dst.DrawColorText(x+1, y, row[0], core.ColorGray)
		dst.DrawText(x+1, y+1, row[1])
		y += 2
	}

	if g.lastClear >= 4 {
		dst.DrawColorText(x+1, y, "ZTRIX!", core.ColorBrightYellow)
	}
}

// renderNext draws the preview queue.
func (g *Game) renderNext(dst *core.Screen, x int) {
	n := g.cfg.Well.Preview
	if n == 0 {
		return
	}
	panel := geom.MustRect(x, hudHeight, x+sideWidth-1, hudHeight+3*n+2)
	dst.DrawBox(panel)
	dst.DrawText(x+2, hudHeight, " NEXT ")
	for i, shape := range g.bag.Peek(n) {
		g.drawPreview(dst, shape, panel.Min().Plus(geom.C(2, 1+3*i)), g.shapes[shape].Color)
	}
}

// drawPreview draws a shape in spawn orientation with its bounds' top-left
// corner at the given screen position.
func (g *Game) drawPreview(dst *core.Screen, shape int, at geom.Coordinate, c core.Color) {
	state := g.shapes[shape].State(geom.R0)
	bounds := state.Bounds()
	normal := geom.Translate(state, bounds.Min().Negate())
	if cells, ok := flipRows(normal, bounds.Height()); ok {
		dst.DrawRegion(cells, at, blockGlyph, c)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(runewidth.StringWidth(line1), runewidth.StringWidth(line2)) + 4
	x := (dst.Width() - w) / 2
	y := (dst.Height() - 5) / 2
	box, err := geom.NewRect(x, y, x+w, y+5)
	if err != nil {
		return
	}
	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(y+1, line1)
	dst.DrawTextCentered(y+3, line2)
}

func (g *Game) finishTitle() string {
	switch g.mode {
	case ModeSprint:
		return fmt.Sprintf("Sprint cleared in %s", formatClock(g.Seconds()))
	case ModeUltra:
		return "Time's up!"
	default:
		return "Finished"
	}
}

// formatClock renders seconds as m:ss.
func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
