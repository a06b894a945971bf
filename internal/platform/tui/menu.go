package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "New game"
	case MenuScores:
		return "High scores"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuItems = []MenuChoice{MenuPlay, MenuScores, MenuQuit}

// menuKeys are fixed; game keys come from config.
var menuKeys = struct {
	Up, Down, Select, Scores, Quit key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
	Select: key.NewBinding(key.WithKeys("enter", " ")),
	Scores: key.NewBinding(key.WithKeys("tab")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor int
	best   int
	config core.RuntimeConfig
	choice MenuChoice
}

// NewMenuModel creates a new menu model. best is shown under the title.
func NewMenuModel(cfg core.RuntimeConfig, best int) MenuModel {
	return MenuModel{
		best:   best,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, menuKeys.Quit):
		m.choice = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, menuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, menuKeys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, menuKeys.Select):
		m.choice = menuItems[m.cursor]
		return m, tea.Quit

	case key.Matches(msg, menuKeys.Scores):
		m.choice = MenuScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(tilePalette[len(tilePalette)-1].fg)).
		Background(lipgloss.Color(tilePalette[len(tilePalette)-1].bg)).
		Padding(0, 2)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	width := m.config.ScreenW

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(dimStyle.Render("Best: "+strconv.Itoa(m.best)), width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.String()
		if i == m.cursor {
			line = activeStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("up/down: navigate  enter: select  tab: scores  q: quit"), width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// RunMenu shows the title menu and returns the player's choice along with
// the runtime config updated for any window resize.
func RunMenu(cfg core.RuntimeConfig, best int) (MenuChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, best),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuQuit, cfg, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuQuit, cfg, nil
	}
	return m.Choice(), m.Config(), nil
}
