package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// tilePalette holds background/foreground pairs for tiles 2 through 2048,
// indexed by log2(value)-1.
var tilePalette = [core.TilePaletteSize]struct {
	bg, fg string
}{
	{"#eee4da", "#776e65"}, // 2
	{"#ede0c8", "#f9f6f2"}, // 4
	{"#edc850", "#f9f6f2"}, // 8
	{"#edc53f", "#f9f6f2"}, // 16
	{"#f67c5f", "#f9f6f2"}, // 32
	{"#f65e3b", "#f9f6f2"}, // 64
	{"#edcf72", "#f9f6f2"}, // 128
	{"#edcc61", "#f9f6f2"}, // 256
	{"#f2b179", "#776e65"}, // 512
	{"#f59563", "#f9f6f2"}, // 1024
	{"#edc22e", "#f9f6f2"}, // 2048
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault:   lipgloss.NewStyle(),
		core.ColorGrid:      lipgloss.NewStyle().Foreground(lipgloss.Color("#bbada0")),
		core.ColorHUD:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		core.ColorOverlay:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")),
		core.ColorEmptyTile: lipgloss.NewStyle().Background(lipgloss.Color("#838b8b")),
	}

	for i, p := range tilePalette {
		styles[core.ColorTile2+core.Color(i)] = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.fg)).
			Background(lipgloss.Color(p.bg))
	}
	return styles
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
