package game2048

import "math/rand"

// Size is the board dimension.
const Size = 4

// WinTile is the tile value that wins the game.
const WinTile = 2048

// SpawnValue is the value of every newly spawned tile.
const SpawnValue = 2

// Grid is a Size x Size matrix of tile values; 0 is an empty cell.
type Grid [Size][Size]int

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Board owns the tile grid and the score accumulated by merges.
// All transforms operate row-wise and mutate the board in place.
type Board struct {
	cells Grid
	score int
	rng   *rand.Rand
}

// NewBoard creates an empty board that draws spawn positions from rng.
func NewBoard(rng *rand.Rand) *Board {
	return &Board{rng: rng}
}

// NewBoardFromGrid creates a board with preset cells and a zero score.
func NewBoardFromGrid(cells Grid, rng *rand.Rand) *Board {
	return &Board{cells: cells, rng: rng}
}

// Cells returns a copy of the grid.
func (b *Board) Cells() Grid {
	return b.cells
}

// Score returns the accumulated merge score.
func (b *Board) Score() int {
	return b.score
}

// Reverse mirrors every row left to right.
func (b *Board) Reverse() {
	for r := range Size {
		row := &b.cells[r]
		for left, right := 0, Size-1; left < right; left, right = left+1, right-1 {
			row[left], row[right] = row[right], row[left]
		}
	}
}

// Transpose swaps rows and columns.
func (b *Board) Transpose() {
	var t Grid
	for r := range Size {
		for c := range Size {
			t[r][c] = b.cells[c][r]
		}
	}
	b.cells = t
}

// Compress shifts the nonzero values of every row to the left, keeping their
// order. It reports whether any value changed position.
func (b *Board) Compress() bool {
	changed := false
	var out Grid
	for r := range Size {
		n := 0
		for c := range Size {
			v := b.cells[r][c]
			if v == 0 {
				continue
			}
			out[r][n] = v
			if n != c {
				changed = true
			}
			n++
		}
	}
	b.cells = out
	return changed
}

// Merge sweeps every row once from left to right. Each equal nonzero pair
// collapses into the left cell, which doubles, and the right cell is cleared.
// The doubled value is added to the score. Reports whether any pair merged.
func (b *Board) Merge() bool {
	merged := false
	for r := range Size {
		row := &b.cells[r]
		for c := 0; c < Size-1; c++ {
			if row[c] == 0 || row[c] != row[c+1] {
				continue
			}
			row[c] *= 2
			row[c+1] = 0
			b.score += row[c]
			merged = true
		}
	}
	return merged
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (b *Board) EmptyCells() []Position {
	var cells []Position
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == 0 {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// SpawnRandomTile places a 2 in a uniformly chosen empty cell.
// On a full board it does nothing and returns false.
func (b *Board) SpawnRandomTile() (Position, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Position{}, false
	}

	p := empty[b.rng.Intn(len(empty))]
	b.cells[p.Row][p.Col] = SpawnValue
	return p, true
}

// CanMergeAdjacent reports whether two horizontally or vertically adjacent
// cells hold the same nonzero value. Adjacent empty cells do not count.
func (b *Board) CanMergeAdjacent() bool {
	for r := range Size {
		for c := range Size {
			v := b.cells[r][c]
			if v == 0 {
				continue
			}
			if c < Size-1 && b.cells[r][c+1] == v {
				return true
			}
			if r < Size-1 && b.cells[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// HasEmptyCell reports whether any cell is zero.
func (b *Board) HasEmptyCell() bool {
	return b.HasValue(0)
}

// HasValue reports whether any cell equals target.
func (b *Board) HasValue(target int) bool {
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == target {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			maxVal = max(maxVal, b.cells[r][c])
		}
	}
	return maxVal
}
