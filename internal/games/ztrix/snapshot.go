package ztrix

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateClearing    GameStateType = "clearing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateFinished    GameStateType = "finished"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Score       int
	Lines       int
	Level       int
	Piece       string // Active shape name
	Rotation    string
	X           int // Box origin of the active piece
	Y           int
	Hold        string // Empty when nothing is held
	Next        []string
	StackHeight int
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.finished:
		state = StateFinished
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case len(g.clearing) > 0:
		state = StateClearing
	}

	hold := ""
	if g.hold >= 0 {
		hold = g.shapes[g.hold].Name
	}

	var next []string
	for _, i := range g.bag.Peek(g.cfg.Well.Preview) {
		next = append(next, g.shapes[i].Name)
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Score:       g.score,
		Lines:       g.lines,
		Level:       g.level,
		Piece:       g.shapes[g.active.shape].Name,
		Rotation:    g.active.rot.String(),
		X:           g.active.pos.X,
		Y:           g.active.pos.Y,
		Hold:        hold,
		Next:        next,
		StackHeight: g.well.StackHeight(),
		State:       state,
	}
}
