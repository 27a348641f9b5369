// Package ztrix implements the falling-block game on top of the geometry
// package: pieces are regions, the well is a rectangle and every move is a
// translation or rotation checked against the settled stack.
package ztrix

import (
	"math/rand"

	"github.com/vovakirdan/ztrix/internal/config"
	"github.com/vovakirdan/ztrix/internal/core"
	"github.com/vovakirdan/ztrix/internal/geom"
	"github.com/vovakirdan/ztrix/internal/registry"
)

// Mode selects the goal of a game.
type Mode string

const (
	ModeMarathon Mode = "marathon" // Play until the stack tops out
	ModeSprint   Mode = "sprint"   // Clear a fixed number of lines
	ModeUltra    Mode = "ultra"    // Score as much as possible before time runs out
)

var (
	left  = geom.Directions[1]
	right = geom.Directions[0]
	down  = geom.Directions[3]
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// piece is the falling piece: a shape index, its orientation and the well
// position of its box origin.
type piece struct {
	shape int
	rot   geom.Rotation
	pos   geom.Coordinate
}

// Game implements the falling-block game.
type Game struct {
	mode     Mode
	override *config.ZtrixConfig

	// Configuration
	cfg     config.ZtrixConfig
	shapes  []Shape
	kicks   []geom.Coordinate
	leveler *config.Leveler

	rng  *rand.Rand
	bag  *Bag
	well *Well

	// Pieces
	active   piece
	hold     int // Shape index, -1 when empty
	holdUsed bool

	// Timing, in ticks
	tick         uint64
	elapsed      int // Ticks of unpaused play
	tickRate     int
	gravityTicks int
	lockTicks    int
	lockResets   int
	clearTicks   int
	clearing     []int // Full rows waiting to be removed

	// Progress
	score     int
	lines     int
	level     int
	lastClear int

	// Game state flags
	gameOver bool
	finished bool
	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
}

// New creates a game in the given mode. Configuration is loaded on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode, hold: -1}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration files. An invalid cfg falls back to the defaults.
func NewWithConfig(mode Mode, cfg config.ZtrixConfig) *Game {
	return &Game{mode: mode, hold: -1, override: &cfg}
}

func init() {
	registry.Register("ztrix", func() registry.Game {
		return New(ModeMarathon)
	})
	registry.Register("ztrix_sprint", func() registry.Game {
		return New(ModeSprint)
	})
	registry.Register("ztrix_ultra", func() registry.Game {
		return New(ModeUltra)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeSprint:
		return "ztrix_sprint"
	case ModeUltra:
		return "ztrix_ultra"
	default:
		return "ztrix"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeSprint:
		return "Ztrix (Sprint)"
	case ModeUltra:
		return "Ztrix (Ultra)"
	default:
		return "Ztrix"
	}
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	switch g.mode {
	case ModeSprint:
		return "Clear the target number of lines as fast as you can"
	case ModeUltra:
		return "Score as much as possible before the clock runs out"
	default:
		return "Endless play with rising speed"
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.prepare(g.loadConfig())

	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.Resize(rc.ScreenW, rc.ScreenH)

	// Peeking at the bag must not shift the restart seeds
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.bag = NewBag(len(g.shapes), rand.New(rand.NewSource(g.rng.Int63())))
	g.well = NewWell(g.cfg.Well.Width, g.cfg.Well.Height, g.cfg.Well.HiddenRows)
	g.leveler = config.NewLeveler(g.cfg.Difficulty)

	g.tick = 0
	g.elapsed = 0
	g.score = 0
	g.lines = 0
	g.level = g.leveler.Level(0)
	g.lastClear = 0
	g.hold = -1
	g.holdUsed = false
	g.clearing = nil
	g.clearTicks = 0
	g.gameOver = false
	g.finished = false
	g.paused = false

	g.spawn(g.bag.Next())
}

// Resize adapts the layout to a new screen size. Play pauses itself while
// the well does not fit.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = g.screenW < g.minWidth() || g.screenH < g.minHeight()
}

// loadConfig returns the configuration for the next round.
func (g *Game) loadConfig() config.ZtrixConfig {
	if g.override != nil {
		if err := g.override.Validate(); err != nil {
			return config.DefaultZtrixConfig()
		}
		return *g.override
	}

	cfg, err := config.LoadZtrix(configPath)
	if err != nil {
		cfg = config.DefaultZtrixConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// prepare derives shapes and kicks from cfg, falling back to the defaults
// if cfg cannot be converted.
func (g *Game) prepare(cfg config.ZtrixConfig) {
	shapes, err := LoadShapes(cfg)
	if err != nil {
		cfg = config.DefaultZtrixConfig()
		shapes, _ = LoadShapes(cfg)
	}
	kicks, err := cfg.KickOffsets()
	if err != nil || len(kicks) == 0 {
		kicks = []geom.Coordinate{geom.Origin}
	}
	g.cfg, g.shapes, g.kicks = cfg, shapes, kicks
}

// cells returns the well cells covered by p.
func (g *Game) cells(p piece) geom.SetRegion {
	return geom.Translate(g.shapes[p.shape].State(p.rot), p.pos)
}

// spawn places a new piece with its top row in the highest visible row.
func (g *Game) spawn(shape int) {
	s := g.shapes[shape]
	top := s.State(geom.R0).Bounds().Max().Y
	g.active = piece{
		shape: shape,
		rot:   geom.R0,
		pos:   geom.C((g.well.Width()-s.Box)/2, g.well.Height()-top),
	}
	g.gravityTicks = 0
	g.lockTicks = 0
	g.lockResets = 0

	if !g.well.Fits(g.cells(g.active)) {
		g.gameOver = true
	}
}

// over reports whether the round has ended.
func (g *Game) over() bool {
	return g.gameOver || g.finished
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}

	if g.over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.elapsed++
	if g.mode == ModeUltra && g.elapsed >= g.cfg.Modes.UltraSeconds*g.tickRate {
		g.finished = true
		return core.StepResult{State: g.State()}
	}

	// Rows stay on screen for the clear delay before they collapse
	if len(g.clearing) > 0 {
		g.clearTicks--
		if g.clearTicks > 0 {
			return core.StepResult{State: g.State()}
		}
		cleared := g.well.ClearLines()
		g.clearing = nil
		g.spawn(g.bag.Next())
		return core.StepResult{State: g.State(), Cleared: cleared}
	}

	if cleared, locked := g.handleInput(in); locked || g.over() {
		return core.StepResult{State: g.State(), Cleared: cleared}
	}

	return core.StepResult{State: g.State(), Cleared: g.applyGravity()}
}

// handleInput applies hold, movement, rotation and drops. It reports
// whether the piece was locked by a hard drop.
func (g *Game) handleInput(in core.InputFrame) ([]int, bool) {
	if in.Has(core.ActionHold) && !g.holdUsed {
		g.swapHold()
		if g.gameOver {
			return nil, false
		}
	}

	if in.Has(core.ActionLeft) {
		g.shift(left)
	}
	if in.Has(core.ActionRight) {
		g.shift(right)
	}

	switch {
	case in.Has(core.ActionRotateCW):
		g.rotate(geom.CW)
	case in.Has(core.ActionRotateCCW):
		g.rotate(geom.CCW)
	case in.Has(core.ActionRotate180):
		g.rotate(geom.R180)
	}

	if in.Has(core.ActionHardDrop) {
		d := g.dropDistance()
		g.active.pos = g.active.pos.Plus(geom.C(0, -d))
		g.score += d * g.cfg.Scoring.HardDropPoints
		return g.lock(), true
	}

	if in.Has(core.ActionSoftDrop) && g.fall() {
		g.score += g.cfg.Scoring.SoftDropPoints
		g.gravityTicks = 0
	}
	return nil, false
}

// applyGravity moves the piece down on the level's interval and locks it
// once it has rested on the stack for the lock delay.
func (g *Game) applyGravity() []int {
	g.gravityTicks++
	if g.gravityTicks >= g.cfg.Timing.Gravity(g.level) {
		g.gravityTicks = 0
		g.fall()
	}

	if !g.grounded() {
		g.lockTicks = 0
		return nil
	}
	g.lockTicks++
	if g.lockTicks >= max(1, g.cfg.Timing.LockDelay) {
		return g.lock()
	}
	return nil
}

// try moves the active piece to next if it fits.
func (g *Game) try(next piece) bool {
	if !g.well.Fits(g.cells(next)) {
		return false
	}
	g.active = next
	return true
}

// fall moves the piece one row down.
func (g *Game) fall() bool {
	next := g.active
	next.pos = next.pos.Plus(down)
	if !g.try(next) {
		return false
	}
	g.lockTicks = 0
	return true
}

// shift moves the piece sideways.
func (g *Game) shift(offset geom.Coordinate) bool {
	next := g.active
	next.pos = next.pos.Plus(offset)
	if !g.try(next) {
		return false
	}
	g.moved()
	return true
}

// rotate turns the piece, trying each kick offset in order.
func (g *Game) rotate(r geom.Rotation) bool {
	turned := g.active
	turned.rot = turned.rot.Then(r)
	for _, kick := range g.kicks {
		next := turned
		next.pos = turned.pos.Plus(kick)
		if g.try(next) {
			g.moved()
			return true
		}
	}
	return false
}

// moved restarts the lock delay after a successful shift or rotation,
// up to the configured number of resets per piece.
func (g *Game) moved() {
	if g.lockTicks > 0 && g.lockResets < g.cfg.Timing.LockResets {
		g.lockTicks = 0
		g.lockResets++
	}
}

// grounded reports whether the piece rests on the floor or the stack.
func (g *Game) grounded() bool {
	return !g.well.Fits(geom.Translate(g.cells(g.active), down))
}

// dropDistance returns how many rows the piece can fall.
func (g *Game) dropDistance() int {
	cells := g.cells(g.active)
	d := 0
	for g.well.Fits(geom.Translate(cells, geom.C(0, -(d+1)))) {
		d++
	}
	return d
}

// swapHold exchanges the active piece with the held one.
func (g *Game) swapHold() {
	next := g.hold
	g.hold = g.active.shape
	g.holdUsed = true
	if next < 0 {
		next = g.bag.Next()
	}
	g.spawn(next)
}

// lock settles the active piece, scores full rows and spawns the next piece.
// It returns the rows removed this tick.
func (g *Game) lock() []int {
	cells := g.cells(g.active)
	g.well.Lock(cells, g.shapes[g.active.shape].Color)
	g.holdUsed = false

	// Locked entirely inside the hidden buffer
	if cells.Bounds().Min().Y >= g.well.Height() {
		g.gameOver = true
		return nil
	}

	full := g.well.FullRows()
	g.lastClear = len(full)
	if n := len(full); n > 0 {
		g.score += g.cfg.Scoring.Points(n, g.level)
		g.lines += n
		g.level = g.leveler.Level(g.lines)
		if g.mode == ModeSprint && g.lines >= g.cfg.Modes.SprintLines {
			g.finished = true
		}
	}

	if len(full) > 0 && g.cfg.Timing.LineClearDelay > 0 && !g.finished {
		g.clearing = full
		g.clearTicks = g.cfg.Timing.LineClearDelay
		return nil
	}

	cleared := g.well.ClearLines()
	if !g.finished {
		g.spawn(g.bag.Next())
	}
	return cleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.over(),
		Paused:   g.paused,
	}
}

// Seconds returns the elapsed play time in whole seconds.
func (g *Game) Seconds() int {
	return g.elapsed / max(g.tickRate, 1)
}
