package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows every valid level found under the level directory, sorted by ID.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	lvls, err := levels.NewLoader(cfg.Paths.Levels).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Printf("No levels found in %s.\n", cfg.Paths.Levels)
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %-11s  %s\n", maxIDLen, "ID", "Vehicles", "Lower bound", "Name")
	fmt.Printf("  %-*s  %-8s  %-11s  %s\n", maxIDLen, "--", "--------", "-----------", "----")

	for _, l := range lvls {
		bound := "-"
		if p, err := l.Puzzle(); err == nil {
			bound = fmt.Sprint(p.Heuristic(p.Initial))
		}
		fmt.Printf("  %-*s  %-8d  %-11s  %s\n", maxIDLen, l.ID, len(l.Pieces), bound, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'rushhour solve <id>' to solve a level.")
}
