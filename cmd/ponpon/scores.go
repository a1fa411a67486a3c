package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ponpon/internal/registry"
	"github.com/vovakirdan/ponpon/internal/storage"
)

var (
	flagRecent  int
	flagAll     bool
	flagClear   bool
	flagRoundID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores and the most recent rounds for a mode
(default: ponpon).

Examples:
  ponpon scores
  ponpon scores ponpon_blitz --recent 10
  ponpon scores --all
  ponpon scores --round 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  ponpon scores ponpon_blitz --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent rounds to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores, records and rounds of the mode")
	scoresCmd.Flags().StringVar(&flagRoundID, "round", "", "Show a single round by ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := modeArg(args)
	if err != nil {
		return err
	}
	info, _ := registry.Info(gameID)

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if s.store == nil {
		return fmt.Errorf("scores database %s is not available", flagDBPath)
	}

	if flagRoundID != "" {
		return printRound(s.store, flagRoundID)
	}

	if flagClear {
		if err := s.store.ClearScores(gameID); err != nil {
			return err
		}
		s.logger.Info("cleared scores", "mode", gameID)
		fmt.Printf("Cleared all scores for %s.\n", info.Title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAll {
		scores, err = s.store.AllScores(gameID)
	} else {
		scores, err = s.store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("failed to retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ponpon play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := s.store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	rounds, err := s.store.RecentRounds(gameID, flagRecent)
	if err != nil {
		return fmt.Errorf("failed to retrieve rounds: %w", err)
	}
	if len(rounds) == 0 {
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Date", "Score", "Combo", "Chain", "Tiles", "Fevers")
	for _, r := range rounds {
		t.Row(
			r.ID,
			r.CreatedAt.Format("01-02 15:04"),
			fmt.Sprint(r.Score),
			fmt.Sprintf("x%d", r.MaxCombo),
			fmt.Sprint(r.LongestChain),
			fmt.Sprint(r.TilesCleared),
			fmt.Sprint(r.FeverCount),
		)
	}

	fmt.Println()
	fmt.Println("Recent rounds")
	fmt.Println(t)
	return nil
}

// printRound prints every stored field of one round.
func printRound(store *storage.Store, id string) error {
	r, err := store.RoundByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no round with ID %s", id)
	}

	fmt.Printf("Round %s (%s)\n\n", r.ID, r.GameID)
	fmt.Printf("  Played:        %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Score:         %d\n", r.Score)
	fmt.Printf("  Chains:        %d (longest %d)\n", r.Chains, r.LongestChain)
	fmt.Printf("  Max combo:     x%d\n", r.MaxCombo)
	fmt.Printf("  Tiles cleared: %d\n", r.TilesCleared)
	fmt.Printf("  Fevers:        %d\n", r.FeverCount)
	fmt.Printf("  Duration:      %s\n", r.Duration.Round(time.Second))
	return nil
}
