package game2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Session string
	Seed    int64
	Score   int
	Moves   int
	Board   Grid
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.last.Won:
		state = StateWin
	case g.last.Over:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Session: g.sessionID,
		Seed:    g.seed,
		Score:   g.engine.CurrentScore(),
		Moves:   g.engine.Moves(),
		Board:   g.engine.Snapshot(),
		MaxTile: g.engine.MaxTile(),
		State:   state,
	}
}
