// ponpon is a tile-matching chain game for the terminal.
//
// Usage:
//
//	ponpon list              - List available modes
//	ponpon play [mode]       - Play a mode (default: ponpon)
//	ponpon menu              - Start menu to pick a mode and difficulty
//	ponpon scores [mode]     - Show high scores and best rounds
//	ponpon simulate [mode]   - Let the bot play headless rounds
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.arcade/ponpon.db)
//	--log-file <path>     - Set log file (default: ~/.arcade/ponpon.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--config <path>       - Custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/ponpon/internal/games/ponpon"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ponpon",
	Short: "Ponpon - link matching tiles in your terminal",
	Long: `Ponpon is a tile-matching chain game. Drag across adjacent tiles
of the same kind to clear them before the round timer runs out.
Quick successive chains build a combo, and enough cleared tiles
trigger Fever for a score multiplier.

Available commands:
  list      - Show all modes
  play      - Play a mode directly
  menu      - Interactive mode and difficulty picker
  scores    - View high scores and best rounds
  simulate  - Let the bot play headless rounds

Examples:
  ponpon play
  ponpon play ponpon_blitz --difficulty hard
  ponpon menu
  ponpon scores ponpon
  ponpon simulate --rounds 10 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/ponpon.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/ponpon.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
