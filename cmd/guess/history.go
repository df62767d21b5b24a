package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-guess/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryID    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches",
	Long: `Display the most recent matches stored in the match database.

Examples:
  guess history
  guess history --limit 5
  guess history --id 3f2c9a1e-...
  guess history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all stored matches")
	historyCmd.Flags().StringVar(&flagHistoryID, "id", "", "Show a single match by its ID")
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	if flagHistoryID != "" {
		m, err := store.MatchByID(flagHistoryID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving match: %v\n", err)
			os.Exit(1)
		}
		if m == nil {
			fmt.Fprintf(os.Stderr, "Error: no match with ID %q\n", flagHistoryID)
			os.Exit(1)
		}
		fmt.Print(matchDetail(*m))
		return
	}

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("Recent matches"))
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'guess play' to start one!")
		return
	}

	fmt.Println(historyTable(matches).View())
}

// historyTable lays out stored matches as a static bubbles table.
func historyTable(matches []storage.MatchRecord) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Mode", Width: 10},
		{Title: "Range", Width: 6},
		{Title: "Secret", Width: 6},
		{Title: "X", Width: 4},
		{Title: "O", Width: 4},
		{Title: "Winner", Width: 6},
		{Title: "ID", Width: 36},
	}

	rows := make([]table.Row, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, table.Row{
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.Mode,
			"1-" + strconv.Itoa(m.Faces),
			strconv.Itoa(m.Secret),
			strconv.Itoa(m.ChoiceX),
			strconv.Itoa(m.ChoiceO),
			storage.WinnerLabel(m.Winner),
			m.MatchID,
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
}

// matchDetail describes one stored match.
func matchDetail(m storage.MatchRecord) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Match "+m.MatchID) + "\n\n")
	fmt.Fprintf(&sb, "  %-10s %s\n", "Played", m.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "  %-10s %s (X: %s, O: %s)\n", "Mode", m.Mode, m.SourceX, m.SourceO)
	fmt.Fprintf(&sb, "  %-10s 1-%d\n", "Range", m.Faces)
	fmt.Fprintf(&sb, "  %-10s %d\n", "Secret", m.Secret)
	fmt.Fprintf(&sb, "  %-10s X %d, O %d\n", "Guesses", m.ChoiceX, m.ChoiceO)
	fmt.Fprintf(&sb, "  %-10s %s (outcome %+d)\n", "Winner", storage.WinnerLabel(m.Winner), m.Outcome)
	fmt.Fprintf(&sb, "  %-10s %s\n", "Duration", time.Duration(m.DurationMS)*time.Millisecond)
	return sb.String()
}
