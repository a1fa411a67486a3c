package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ponpon/internal/games/ponpon"
)

var (
	flagRounds int
	flagThink  time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Let the bot play headless rounds",
	Long: `Play rounds without a terminal using the greedy bot and print a
summary per round. Useful for tuning a config file.

Examples:
  ponpon simulate
  ponpon simulate ponpon_blitz --rounds 20 --seed 7
  ponpon simulate --config ./my-ponpon.yaml --think 250ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of rounds to play")
	simulateCmd.Flags().DurationVar(&flagThink, "think", ponpon.DefaultThink, "Bot pause between chains")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID, err := modeArg(args)
	if err != nil {
		return err
	}
	if flagRounds <= 0 {
		return fmt.Errorf("--rounds must be positive, got %d", flagRounds)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	yamlCfg, err := ponpon.LoadConfig(gameID)
	if err != nil {
		return err
	}
	cfg := ponpon.CoreConfig(yamlCfg)
	// Bonus time can stretch a round; give up well after the nominal end
	limit := 10 * (cfg.RoundDuration + cfg.ReadyDelay)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Seed", "Score", "Chains", "Longest", "Combo", "Tiles", "Fevers")

	total := 0
	for i := 0; i < flagRounds; i++ {
		roundSeed := seed + int64(i)
		sum, err := ponpon.SimulateRound(cfg, roundSeed, flagFPS, flagThink, limit)
		if err != nil {
			return fmt.Errorf("round with seed %d: %w", roundSeed, err)
		}
		s.logger.Debug("simulated round", "seed", roundSeed, "score", sum.Score, "chains", sum.Chains)

		total += sum.Score
		t.Row(
			fmt.Sprint(roundSeed),
			fmt.Sprint(sum.Score),
			fmt.Sprint(sum.Chains),
			fmt.Sprint(sum.LongestChain),
			fmt.Sprintf("x%d", sum.MaxCombo),
			fmt.Sprint(sum.TilesCleared),
			fmt.Sprint(sum.FeverCount),
		)
	}

	fmt.Printf("%s, %s difficulty, %d rounds\n", gameID, s.preset, flagRounds)
	fmt.Println(t)
	fmt.Printf("Average score: %.1f\n", float64(total)/float64(flagRounds))
	return nil
}
