package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a new 2048 game.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P/Esc            - Pause
  R                - Restart (after the game ends)
  Ctrl+S           - Save a screenshot to ~/.t2048/screenshots
  Q/Ctrl+C         - Quit

Keys can be rebound in the "keys" section of the config file.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --db ./scores.db --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return s.play(runtimeConfig())
}
