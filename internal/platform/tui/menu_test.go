package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"enter plays", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuPlay},
		{"down to scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuScores},
		{"bottom clamps", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuQuit},
		{"top clamps", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, MenuPlay},
		{"tab opens scores", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuScores},
		{"q quits", []tea.KeyMsg{runeKey('q')}, MenuQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel(core.DefaultConfig(), 0)
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = m.Update(k)
			}

			got := m.(MenuModel).Choice()
			if got != tt.want {
				t.Errorf("choice = %v, want %v", got, tt.want)
			}
			if !isQuit(cmd) {
				t.Error("selection did not close the menu")
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 4096)
	view := m.View()

	for _, want := range []string{"2 0 4 8", "Best: 4096", "New game", "High scores", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuResize(t *testing.T) {
	var m tea.Model = NewMenuModel(core.DefaultConfig(), 0)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	cfg := m.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config size = %dx%d, want 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}
