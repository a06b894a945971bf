package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Game is the contract between the TUI loop and a game implementation.
type Game interface {
	ID() string
	Title() string
	SessionID() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// ScoreStore records finished games. *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	HighScore() (int, error)
}

// Options configures a Model.
type Options struct {
	Keys   KeyMap
	Store  ScoreStore // nil disables score recording
	Logger *log.Logger
	// ScreenshotDir defaults to ~/.t2048/screenshots.
	ScreenshotDir string
	NoScreenshots bool
}

// Model is the Bubble Tea model for running a game.
// Each key press advances the game by exactly one step.
type Model struct {
	game       Game
	screen     *core.Screen
	store      ScoreStore
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	shotDir    string
	noShots    bool
	config     core.RuntimeConfig
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current game
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so the first View has a board.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		game:    game,
		store:   opts.Store,
		keys:    opts.Keys,
		help:    help.New(),
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		noShots: opts.NoScreenshots,
		config:  cfg,
	}
	m.screen = core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH))
	m.startGame()
	return m
}

// boardHeight leaves one line for the help footer.
func boardHeight(h int) int {
	return max(h-1, 0)
}

func (m *Model) startGame() {
	m.config.Best = m.bestScore()
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.scoreSaved = false
}

func (m *Model) bestScore() int {
	if m.store == nil {
		return m.config.Best
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("cannot read high score", "err", err)
		return m.config.Best
	}
	return best
}

// Init implements tea.Model. The game is event driven, so there is no tick.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if m.noShots {
			return m, nil
		}
		if _, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		if m.gameState.Score > 0 {
			m.saveScore()
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.config.Seed = time.Now().UnixNano()
			m.startGame()
		}
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
	}
	return m, nil
}

// saveScore records the current game once.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	m.scoreSaved = true

	entry := storage.ScoreEntry{
		SessionID: m.game.SessionID(),
		Score:     m.gameState.Score,
		MaxTile:   m.gameState.MaxTile,
		Moves:     m.gameState.Moves,
		Won:       m.gameState.Won,
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("cannot save score", "session", entry.SessionID, "err", err)
		return
	}
	m.logger.Debug("score saved", "session", entry.SessionID, "score", entry.Score)
}

// handleResize processes window resize events without resetting the board.
func (m *Model) handleResize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, boardHeight(h))
	m.help.Width = w
	m.game.Resize(w, boardHeight(h))
	m.gameState = m.game.State()
}

// saveScreenshot writes the current screen as plain text and returns the path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, config.AppDir, "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the last observed game state.
func (m *Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
