package game2048

import (
	"fmt"
	"math/rand"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a stable order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// step is one board primitive in a move pipeline.
// It reports whether it changed the tile layout.
type step func(b *Board) bool

func reverse(b *Board) bool   { b.Reverse(); return false }
func transpose(b *Board) bool { b.Transpose(); return false }
func compress(b *Board) bool  { return b.Compress() }
func merge(b *Board) bool     { return b.Merge() }

// pipelines reduce every direction to compress/merge/compress on rows.
// Vertical moves transpose columns into rows; right and down moves mirror
// rows so that sliding toward index 0 does the work.
var pipelines = map[Direction][]step{
	DirUp:    {transpose, compress, merge, compress, transpose},
	DirDown:  {transpose, reverse, compress, merge, compress, reverse, transpose},
	DirLeft:  {compress, merge, compress},
	DirRight: {reverse, compress, merge, compress, reverse},
}

// slide runs the pipeline for dir on b and reports whether any step
// changed the tile layout.
func slide(b *Board, dir Direction) bool {
	moved := false
	for _, s := range pipelines[dir] {
		if s(b) {
			moved = true
		}
	}
	return moved
}

// MoveResult is the outcome of a single ApplyMove call.
type MoveResult struct {
	Moved    bool     // The board changed
	Won      bool     // The winning tile is on the board
	Over     bool     // No empty cell and no adjacent equal pair
	Score    int      // Score after the move
	Gained   int      // Score gained by this move
	Spawned  Position // Cell that received the new tile
	HasSpawn bool     // Whether Spawned is valid
}

// Engine drives one game: it maps directions onto board pipelines,
// spawns tiles and evaluates the outcome after every move.
type Engine struct {
	board *Board
	rng   *rand.Rand
	moves int
	won   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine's random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// NewEngine starts a game: an empty board seeded with two 2-tiles.
func NewEngine(opts ...Option) *Engine {
	e := newEngine(opts)
	e.board = NewBoard(e.rng)
	e.board.SpawnRandomTile()
	e.board.SpawnRandomTile()
	return e
}

// NewEngineFromGrid starts a game from preset cells without spawning.
func NewEngineFromGrid(cells Grid, opts ...Option) *Engine {
	e := newEngine(opts)
	e.board = NewBoardFromGrid(cells, e.rng)
	return e
}

func newEngine(opts []Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return e
}

// ApplyMove runs the pipeline for dir. When the board changed a new tile is
// spawned. Outcome checks run even when nothing moved. Once the game is won
// the engine is frozen and further moves are ignored.
func (e *Engine) ApplyMove(dir Direction) MoveResult {
	if e.won {
		return MoveResult{Won: true, Score: e.board.Score()}
	}

	before := e.board.Score()
	res := MoveResult{Moved: slide(e.board, dir)}
	if res.Moved {
		e.moves++
		res.Spawned, res.HasSpawn = e.board.SpawnRandomTile()
	}

	res.Score = e.board.Score()
	res.Gained = res.Score - before

	if e.board.HasValue(WinTile) {
		e.won = true
		res.Won = true
		return res
	}
	res.Over = !e.board.HasEmptyCell() && !e.board.CanMergeAdjacent()
	return res
}

// Snapshot returns a copy of the grid for rendering.
func (e *Engine) Snapshot() Grid {
	return e.board.Cells()
}

// CurrentScore returns the score accumulated so far.
func (e *Engine) CurrentScore() int {
	return e.board.Score()
}

// Moves returns the number of moves that changed the board.
func (e *Engine) Moves() int {
	return e.moves
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return e.board.MaxTile()
}

// Won reports whether the winning tile has been reached.
func (e *Engine) Won() bool {
	return e.won || e.board.HasValue(WinTile)
}

// Over reports whether no move can change the board.
func (e *Engine) Over() bool {
	return !e.Won() && !e.board.HasEmptyCell() && !e.board.CanMergeAdjacent()
}
