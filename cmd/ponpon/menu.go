package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ponpon/internal/games/ponpon"
	"github.com/vovakirdan/ponpon/internal/platform/tui"
	"github.com/vovakirdan/ponpon/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty picker",
	Long: `Start in interactive menu mode.

Use Up/Down to pick a mode and Left/Right to pick a difficulty.
After time up, press B to return to the menu.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  ponpon menu
  ponpon menu --fps 30
  ponpon menu --db ./ponpon.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := runtimeConfig()
	preset := s.preset

	for {
		menuResult, err := tui.RunMenu(s.store, cfg, preset)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			return nil
		}

		ponpon.SetDifficultyPreset(preset)
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}

		// Fresh seed for each round unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		s.logger.Info("starting round", "mode", menuResult.GameID, "difficulty", preset)
		backToMenu, err := tui.Run(game, s.store, cfg)
		if err != nil {
			return fmt.Errorf("failed to run game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
