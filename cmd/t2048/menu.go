package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

// runMenu shows the title menu and loops back to it after every game or
// scoreboard visit.
func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := runtimeConfig()
	seeded := cfg.Seed != 0

	for {
		choice, updated, err := tui.RunMenu(cfg, s.best())
		if err != nil {
			return err
		}
		cfg = updated

		switch choice {
		case tui.MenuPlay:
			if err := s.play(cfg); err != nil {
				return err
			}
			// A fixed --seed only applies to the first game.
			if seeded {
				cfg.Seed = time.Now().UnixNano()
			}

		case tui.MenuScores:
			var reader tui.ScoreReader
			if s.store != nil {
				reader = s.store
			}
			if err := tui.RunScoreboard(reader, cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}
