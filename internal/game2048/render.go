package game2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = Size*cellWidth + 1  // +1 for right border
	boardH = Size*cellHeight + 1 // +1 for bottom border

	// Board + HUD, with a one-column margin and room for the help footer.
	minScreenW = boardW + 2
	minScreenH = hudHeight + 1 + boardH + 2
)

// Render draws the game state to the screen.
// It only reads from the engine's snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	renderBoard(dst, g.engine.Snapshot(), boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorHUD)

	score := g.engine.CurrentScore()
	dst.DrawTextColored(boardX, 1, fmt.Sprintf("Score: %d", score), core.ColorHUD)

	best := fmt.Sprintf("Best: %d", max(g.best, score))
	dst.DrawTextColored(boardX+boardW-len(best), 1, best, core.ColorHUD)

	moves := fmt.Sprintf("Moves: %d", g.engine.Moves())
	dst.DrawTextColored(boardX+(boardW-len(moves))/2, 2, moves, core.ColorDim)
}

// renderBoard draws the grid lines and the tiles of cells.
func renderBoard(dst *core.Screen, cells Grid, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, gridCorner(x, y), core.ColorGrid)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGrid)
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGrid)
				}
			}
		}
	}

	for r := range Size {
		for c := range Size {
			val := cells[r][c]
			color := core.TileColor(val)

			interior := core.NewRect(boardX+c*cellWidth+1, boardY+r*cellHeight+1, cellWidth-1, cellHeight-1)
			dst.FillRect(interior, ' ', color)
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((interior.W-len(valStr))/2, 0)
			dst.DrawTextColored(interior.X+padLeft, interior.Y, valStr, color)
		}
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause and end-of-game notifications over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()
	score := fmt.Sprintf("Score: %d", g.engine.CurrentScore())

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.last.Won:
		drawOverlay(dst, cx, cy, "You Won!!", score, "Press R to restart")
	case g.last.Over:
		drawOverlay(dst, cx, cy, "Game Over!!!", score, "Press R to restart")
	}
}

// drawOverlay draws a centered boxed message.
func drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(cx-(maxLen+4)/2, cy-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)

	for i, line := range lines {
		dst.DrawTextColored(cx-len(line)/2, box.Y+1+i, line, core.ColorOverlay)
	}
}
