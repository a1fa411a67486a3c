package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ponpon/internal/platform/tui"
	"github.com/vovakirdan/ponpon/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a round of the specified mode (default: ponpon).

Controls:
  Mouse drag          - Link tiles, release to clear
  Arrows/WASD/HJKL    - Move cursor
  Space               - Grab a tile, then release to clear
  ?                   - Hint the longest chain
  P/Esc               - Pause
  R                   - Restart (after time up)
  B                   - Back (after time up)
  Q/Ctrl+C            - Quit

Difficulty options:
  easy   - Longer combo window, lower fever threshold, one less tile kind
  normal - Config file values (default)
  hard   - Short combo window, more tile kinds
  fixed  - Config file values, no scaling at all

Examples:
  ponpon play
  ponpon play ponpon_blitz
  ponpon play --difficulty hard
  ponpon play --config ./my-ponpon.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID, err := modeArg(args)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	s.logger.Info("starting round", "mode", gameID, "difficulty", s.preset)
	if _, err := tui.Run(game, s.store, runtimeConfig()); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
