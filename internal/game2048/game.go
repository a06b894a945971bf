package game2048

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ID is the identifier scores are stored under.
const ID = "2048"

// Game adapts an Engine to the platform's input/render loop.
// It owns pause and window-size handling; the Engine owns the rules.
type Game struct {
	engine    *Engine
	sessionID string
	seed      int64
	best      int
	last      MoveResult
	logger    *log.Logger

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game. Call Reset before the first Step.
func New() *Game {
	return &Game{
		logger: log.New(io.Discard),
	}
}

// SetLogger routes game events to logger.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// SessionID identifies the current game; it changes on every Reset.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Reset starts a new game, replacing the board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(WithSeed(cfg.Seed))
	g.sessionID = uuid.NewString()
	g.seed = cfg.Seed
	g.best = cfg.Best
	g.last = MoveResult{}
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Info("game started", "session", g.sessionID, "seed", cfg.Seed)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step handles one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}
	if g.paused || g.finished() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.last = g.engine.ApplyMove(dir)
	g.logger.Debug("move", "dir", dir, "moved", g.last.Moved, "score", g.last.Score)

	switch {
	case g.last.Won:
		g.logger.Info("game won",
			"session", g.sessionID,
			"score", g.last.Score,
			"moves", g.engine.Moves(),
		)
	case g.last.Over:
		g.logger.Info("game over",
			"session", g.sessionID,
			"score", g.last.Score,
			"max_tile", g.engine.MaxTile(),
			"moves", g.engine.Moves(),
		)
	}

	return core.StepResult{State: g.State(), Moved: g.last.Moved}
}

// directionFor picks the first move action present in the frame.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

func (g *Game) finished() bool {
	return g.last.Won || g.last.Over
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.CurrentScore(),
		MaxTile:  g.engine.MaxTile(),
		Moves:    g.engine.Moves(),
		Won:      g.last.Won,
		GameOver: g.finished(),
		Paused:   g.paused || g.tooSmall,
	}
}
