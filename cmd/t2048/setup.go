package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// newLogger writes to w with the configured level.
func newLogger(w io.Writer, cfg config.LogConfig, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
}

// newFileLogger logs to cfg.File, since the alt screen owns the terminal
// during play. An empty path discards all output.
func newFileLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	path, err := config.ExpandPath(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return newLogger(io.Discard, cfg, "t2048"), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, cfg, "t2048"), f, nil
}

// openStore opens the high-score database. A failure is reported as a
// warning and the game runs without scores. An empty path disables scores.
func openStore(path string) *storage.Store {
	if path == "" {
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// session bundles what an interactive local run needs.
type session struct {
	store  *storage.Store
	logger *log.Logger
	closer io.Closer
}

func newSession() (*session, error) {
	logger, closer, err := newFileLogger(appConfig.Log)
	if err != nil {
		return nil, err
	}
	return &session{
		store:  openStore(appConfig.Storage.Path),
		logger: logger,
		closer: closer,
	}, nil
}

func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	s.closer.Close()
}

// options returns the model options. A missing store stays a nil interface.
func (s *session) options() tui.Options {
	opts := tui.Options{
		Keys:   tui.NewKeyMap(appConfig.Keys),
		Logger: s.logger,
	}
	if s.store != nil {
		opts.Store = s.store
	}
	return opts
}

func (s *session) best() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.HighScore()
	if err != nil {
		s.logger.Warn("cannot read high score", "err", err)
		return 0
	}
	return best
}

// play runs one game until the player quits.
func (s *session) play(cfg core.RuntimeConfig) error {
	game := game2048.New()
	game.SetLogger(s.logger)

	if err := tui.Run(game, cfg, s.options()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    appConfig.Game.Seed,
	}
}
