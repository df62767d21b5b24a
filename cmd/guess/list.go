package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-guess/internal/strategy"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available player kinds",
	Long:  `Shows the decision sources that can sit at X or O.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	sources := strategy.List()

	if len(sources) == 0 {
		fmt.Println("No player kinds available.")
		return
	}

	fmt.Println("Available player kinds:")
	fmt.Println()

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, s := range sources {
		if len(s.Kind) > maxKindLen {
			maxKindLen = len(s.Kind)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxKindLen, "Kind", "Description")
	fmt.Printf("  %-*s  %s\n", maxKindLen, "----", "-----------")

	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxKindLen, s.Kind, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'guess play --x <kind> --o <kind>' to pick players.")
}
