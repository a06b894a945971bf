package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	if got := RenderScreen(s); got != "hello\nworld" {
		t.Errorf("RenderScreen = %q, want %q", got, "hello\nworld")
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(12, 1)
	s.DrawTextColored(0, 0, "Score", core.ColorHUD)
	s.DrawTextColored(6, 0, "2048", core.TileColor(2048))

	got := RenderScreen(s)
	for _, want := range []string{"Score", "2048"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderScreen = %q, missing %q", got, want)
		}
	}
}

func TestEveryTileColorHasStyle(t *testing.T) {
	for v := 2; v <= 2048; v *= 2 {
		c := core.TileColor(v)
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for tile %d (color %d)", v, c)
		}
	}
	if len(tilePalette) != core.TilePaletteSize {
		t.Errorf("palette has %d entries, want %d", len(tilePalette), core.TilePaletteSize)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	// Unknown colors render like the default style.
	if got, want := styleFor(core.Color(200)).Render("x"), styleFor(core.ColorDefault).Render("x"); got != want {
		t.Errorf("styleFor(unknown) rendered %q, want %q", got, want)
	}
}
