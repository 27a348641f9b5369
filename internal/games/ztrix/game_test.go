package ztrix

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/ztrix/internal/config"
	"github.com/vovakirdan/ztrix/internal/core"
	"github.com/vovakirdan/ztrix/internal/geom"
	"github.com/vovakirdan/ztrix/internal/registry"
)

func testConfig() config.ZtrixConfig {
	cfg := config.DefaultZtrixConfig()
	cfg.Timing.LineClearDelay = 0
	return cfg
}

func newTestGame(t *testing.T, mode Mode, cfg config.ZtrixConfig) *Game {
	t.Helper()
	g := NewWithConfig(mode, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func spawnShape(t *testing.T, g *Game, name string) {
	t.Helper()
	for i, s := range g.shapes {
		if s.Name == name {
			g.spawn(i)
			return
		}
	}
	t.Fatalf("shape %q not configured", name)
}

// fillRowExcept settles row y everywhere but the given columns.
func fillRowExcept(g *Game, y int, gaps ...int) {
	var columns []int
	for x := range g.well.Width() {
		if !slices.Contains(gaps, x) {
			columns = append(columns, x)
		}
	}
	g.well.Lock(row(y, columns...), core.ColorGray)
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"ztrix", "ztrix_sprint", "ztrix_ultra"} {
		if !registry.Exists(id) {
			t.Errorf("registry.Exists(%q) = false, expected true", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	script := func(i int) []core.Action {
		switch i % 24 {
		case 3:
			return []core.Action{core.ActionRotateCW}
		case 7:
			return []core.Action{core.ActionLeft}
		case 11:
			return []core.Action{core.ActionRight, core.ActionSoftDrop}
		case 15:
			if i%48 == 15 {
				return []core.Action{core.ActionHold}
			}
		case 23:
			return []core.Action{core.ActionHardDrop}
		}
		return nil
	}

	g1 := newTestGame(t, ModeMarathon, testConfig())
	g2 := newTestGame(t, ModeMarathon, testConfig())
	screen := core.NewScreen(80, 24)

	for i := range 600 {
		step(g1, script(i)...)
		step(g2, script(i)...)
		// Rendering one game must not change its course
		g1.Render(screen)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestSpawnPosition(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())

	for _, name := range []string{"I", "O", "T", "S", "Z", "J", "L"} {
		spawnShape(t, g, name)
		bounds := g.cells(g.active).Bounds()
		if bounds.Max().Y != g.well.Height() {
			t.Errorf("%s top row = %d, expected %d", name, bounds.Max().Y-1, g.well.Height()-1)
		}
		box := g.shapes[g.active.shape].Box
		if g.active.pos.X != (g.well.Width()-box)/2 {
			t.Errorf("%s box origin X = %d, expected %d", name, g.active.pos.X, (g.well.Width()-box)/2)
		}
	}
}

func TestShiftStopsAtWalls(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	spawnShape(t, g, "O")

	for range 10 {
		step(g, core.ActionLeft)
	}
	if got := g.cells(g.active).Bounds().Min().X; got != 0 {
		t.Errorf("left edge after shifting = %d, expected 0", got)
	}

	for range 10 {
		step(g, core.ActionRight)
	}
	if got := g.cells(g.active).Bounds().Max().X; got != g.well.Width() {
		t.Errorf("right edge after shifting = %d, expected %d", got, g.well.Width())
	}
}

func TestRotationWallKick(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	spawnShape(t, g, "T")

	step(g, core.ActionRotateCW)
	if g.active.rot != geom.CW {
		t.Fatalf("rotation = %v, expected CW", g.active.rot)
	}

	for range 6 {
		step(g, core.ActionLeft)
	}
	// Upright T hugs the wall with its box hanging outside the well
	if g.active.pos.X != -1 {
		t.Fatalf("box origin X = %d, expected -1", g.active.pos.X)
	}

	step(g, core.ActionRotateCCW)
	if g.active.rot != geom.R0 {
		t.Errorf("rotation = %v, expected R0", g.active.rot)
	}
	if g.active.pos.X != 0 {
		t.Errorf("box origin X after kick = %d, expected 0", g.active.pos.X)
	}
}

func TestGravity(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	startY := g.active.pos.Y
	interval := g.cfg.Timing.Gravity(g.level)

	for range interval - 1 {
		step(g)
	}
	if g.active.pos.Y != startY {
		t.Fatalf("Y after %d ticks = %d, expected %d", interval-1, g.active.pos.Y, startY)
	}
	step(g)
	if g.active.pos.Y != startY-1 {
		t.Errorf("Y after %d ticks = %d, expected %d", interval, g.active.pos.Y, startY-1)
	}
}

func TestSoftDropScores(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	startY := g.active.pos.Y

	step(g, core.ActionSoftDrop)
	if g.active.pos.Y != startY-1 {
		t.Errorf("Y = %d, expected %d", g.active.pos.Y, startY-1)
	}
	if g.score != g.cfg.Scoring.SoftDropPoints {
		t.Errorf("score = %d, expected %d", g.score, g.cfg.Scoring.SoftDropPoints)
	}
}

func TestLockDelay(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	g.active.pos.Y -= g.dropDistance()

	delay := g.cfg.Timing.LockDelay
	for range delay - 1 {
		step(g)
	}
	if h := g.well.StackHeight(); h != 0 {
		t.Fatalf("StackHeight() before lock delay = %d, expected 0", h)
	}
	step(g)
	if h := g.well.StackHeight(); h == 0 {
		t.Error("piece should lock once the delay expires")
	}
}

func TestHardDropLocks(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	d := g.dropDistance()

	step(g, core.ActionHardDrop)

	if g.score != d*g.cfg.Scoring.HardDropPoints {
		t.Errorf("score = %d, expected %d", g.score, d*g.cfg.Scoring.HardDropPoints)
	}
	if h := g.well.StackHeight(); h == 0 {
		t.Error("StackHeight() = 0 after hard drop")
	}
	if g.cells(g.active).Bounds().Max().Y != g.well.Height() {
		t.Error("a new piece should spawn at the top after a hard drop")
	}
}

func TestLineClear(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	spawnShape(t, g, "I")
	fillRowExcept(g, 0, 3, 4, 5, 6)

	d := g.dropDistance()
	res := step(g, core.ActionHardDrop)

	if !slices.Equal(res.Cleared, []int{0}) {
		t.Errorf("Cleared = %v, expected [0]", res.Cleared)
	}
	if res.State.Lines != 1 {
		t.Errorf("Lines = %d, expected 1", res.State.Lines)
	}
	if expected := d*g.cfg.Scoring.HardDropPoints + 100; res.State.Score != expected {
		t.Errorf("Score = %d, expected %d", res.State.Score, expected)
	}
	if h := g.well.StackHeight(); h != 0 {
		t.Errorf("StackHeight() = %d, expected 0", h)
	}
}

func TestLineClearDelay(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.LineClearDelay = 3
	g := newTestGame(t, ModeMarathon, cfg)
	spawnShape(t, g, "I")
	fillRowExcept(g, 0, 3, 4, 5, 6)

	if res := step(g, core.ActionHardDrop); res.Cleared != nil {
		t.Fatalf("Cleared on lock = %v, expected nil during delay", res.Cleared)
	}
	if got := g.Snapshot().State; got != StateClearing {
		t.Errorf("State = %q, expected %q", got, StateClearing)
	}

	step(g)
	step(g)
	res := step(g)
	if !slices.Equal(res.Cleared, []int{0}) {
		t.Errorf("Cleared after delay = %v, expected [0]", res.Cleared)
	}
	if got := g.Snapshot().State; got != StatePlaying {
		t.Errorf("State = %q, expected %q", got, StatePlaying)
	}
}

func TestLevelUp(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty.LinesPerLevel = 1
	g := newTestGame(t, ModeMarathon, cfg)
	spawnShape(t, g, "I")
	fillRowExcept(g, 0, 3, 4, 5, 6)

	res := step(g, core.ActionHardDrop)
	if res.State.Level != 2 {
		t.Errorf("Level = %d, expected 2", res.State.Level)
	}
}

func TestHold(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	first := g.shapes[g.active.shape].Name
	upcoming := g.shapes[g.bag.Peek(1)[0]].Name

	step(g, core.ActionHold)
	snap := g.Snapshot()
	if snap.Hold != first {
		t.Errorf("Hold = %q, expected %q", snap.Hold, first)
	}
	if snap.Piece != upcoming {
		t.Errorf("Piece = %q, expected %q", snap.Piece, upcoming)
	}

	// A second hold before locking is ignored
	step(g, core.ActionHold)
	if got := g.Snapshot(); got.Hold != first || got.Piece != upcoming {
		t.Errorf("after second hold Hold, Piece = %q, %q, expected %q, %q", got.Hold, got.Piece, first, upcoming)
	}

	// Locking frees the hold again and swaps the pieces back
	step(g, core.ActionHardDrop)
	step(g, core.ActionHold)
	if got := g.Snapshot().Piece; got != first {
		t.Errorf("Piece after swap back = %q, expected %q", got, first)
	}
}

func TestBlockOutAndRestart(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	for y := g.well.Height() - 3; y < g.well.Height(); y++ {
		g.well.Lock(row(y, 3, 4, 5, 6), core.ColorGray)
	}
	spawnShape(t, g, "T")

	if !g.State().GameOver {
		t.Fatal("spawning into the stack should end the game")
	}
	if got := g.Snapshot().State; got != StateGameOver {
		t.Errorf("State = %q, expected %q", got, StateGameOver)
	}

	step(g, core.ActionRestart)
	if g.State().GameOver {
		t.Error("restart should start a new game")
	}
	if h := g.well.StackHeight(); h != 0 {
		t.Errorf("StackHeight() after restart = %d, expected 0", h)
	}
}

func TestPauseFreezesPlay(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("Paused = false after pause")
	}

	y := g.active.pos.Y
	for range 200 {
		step(g, core.ActionSoftDrop)
	}
	if g.active.pos.Y != y || g.elapsed != 0 {
		t.Errorf("paused game moved: Y %d -> %d, elapsed %d", y, g.active.pos.Y, g.elapsed)
	}

	step(g, core.ActionPause)
	if g.State().Paused {
		t.Error("Paused = true after second pause")
	}
}

func TestSprintFinishes(t *testing.T) {
	cfg := testConfig()
	cfg.Modes.SprintLines = 1
	g := newTestGame(t, ModeSprint, cfg)
	spawnShape(t, g, "I")
	fillRowExcept(g, 0, 3, 4, 5, 6)

	res := step(g, core.ActionHardDrop)
	if !res.State.GameOver {
		t.Error("sprint should end once the target is reached")
	}
	if got := g.Snapshot().State; got != StateFinished {
		t.Errorf("State = %q, expected %q", got, StateFinished)
	}
}

func TestUltraTimesOut(t *testing.T) {
	cfg := testConfig()
	cfg.Modes.UltraSeconds = 1
	g := NewWithConfig(ModeUltra, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})

	for range 9 {
		step(g)
	}
	if g.State().GameOver {
		t.Fatal("ultra ended early")
	}
	step(g)
	if got := g.Snapshot().State; got != StateFinished {
		t.Errorf("State = %q, expected %q", got, StateFinished)
	}
}

func TestInvalidConfigFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Pieces = nil
	g := newTestGame(t, ModeMarathon, cfg)
	if len(g.shapes) != 7 {
		t.Errorf("len(shapes) = %d, expected the 7 default shapes", len(g.shapes))
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeMarathon, testConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD = %q, expected score", hud)
	}
	if top := screen.Row(hudHeight + 1); !strings.Contains(top, blockGlyph) {
		t.Errorf("top well row = %q, expected the spawned piece", top)
	}
	if bottom := screen.Row(hudHeight + g.well.Height()); !strings.Contains(bottom, ghostGlyph) {
		t.Errorf("bottom well row = %q, expected the ghost piece", bottom)
	}

	small := NewWithConfig(ModeMarathon, testConfig())
	small.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 1})
	screen = core.NewScreen(30, 10)
	small.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should show the resize notice")
	}
}
