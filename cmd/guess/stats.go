package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-guess/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated results",
	Long: `Display win, loss and tie counts over all stored matches.

Examples:
  guess stats
  guess stats --db ./matches.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("Match statistics"))
	fmt.Println()

	if stats.Matches == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-14s %d\n", "Matches", stats.Matches)
	fmt.Printf("  %-14s %d (%s)\n", "X wins", stats.XWins, percent(stats.XWins, stats.Matches))
	fmt.Printf("  %-14s %d (%s)\n", "O wins", stats.OWins, percent(stats.OWins, stats.Matches))
	fmt.Printf("  %-14s %d (%s)\n", "Ties", stats.Ties, percent(stats.Ties, stats.Matches))
	fmt.Printf("  %-14s %d\n", "X hit secret", stats.ExactX)
	fmt.Printf("  %-14s %d\n", "O hit secret", stats.ExactO)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  %-14s %s\n", "Last played", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(n)*100/float64(total))
}
