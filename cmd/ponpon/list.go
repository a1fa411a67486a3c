package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ponpon/internal/registry"
	"github.com/vovakirdan/ponpon/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes with your best score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	// Best scores are a bonus; the list works without a database
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Best", "Description")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "-----------")

	for _, g := range games {
		best := "-"
		if st, ok := stats[g.ID]; ok {
			best = fmt.Sprint(st.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, best, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'ponpon play <id>' to play a mode.")
}
