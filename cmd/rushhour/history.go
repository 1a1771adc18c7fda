package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rushhour/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level-id]",
	Short: "Show recorded benchmark results",
	Long: `Without arguments, list every level with recorded benchmark runs.
With a level ID, show the best row per strategy and the most recent rows.

Examples:
  rushhour history
  rushhour history lvl03 --limit 5
  rushhour history lvl03 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent rows to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded rows of the level")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		listHistory(store)
		return
	}

	mapID := args[0]
	if flagClear {
		if err := store.ClearRuns(mapID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared history for %s.\n", mapID)
		return
	}

	best, err := store.BestRuns(mapID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(best) == 0 {
		fmt.Printf("No runs recorded for %s yet.\n", mapID)
		fmt.Println()
		fmt.Printf("Run 'rushhour bench %s' to record the first results.\n", mapID)
		return
	}

	fmt.Printf("Best results - %s\n", mapID)
	fmt.Println()
	printRuns(best)

	recent, err := store.RecentRuns(mapID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	printRuns(recent)
}

func listHistory(store *storage.Store) {
	maps, err := store.Maps()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}
	if len(maps) == 0 {
		fmt.Println("No benchmark runs recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-5s  %s\n", "Level", "Rows", "Last run")
	fmt.Printf("  %-12s  %-5s  %s\n", "-----", "----", "--------")
	for _, m := range maps {
		fmt.Printf("  %-12s  %-5d  %s\n", m.MapID, m.Runs, m.LastRun.Format("2006-01-02 15:04"))
	}
}

func printRuns(runs []storage.RunRecord) {
	fmt.Printf("  %-5s  %10s  %12s  %7s  %6s  %10s  %s\n",
		"Algo", "Avg ms", "Avg bytes", "Success", "Moves", "States", "Date")
	fmt.Printf("  %-5s  %10s  %12s  %7s  %6s  %10s  %s\n",
		"----", "------", "---------", "-------", "-----", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-5s  %10.3f  %12.0f  %6.0f%%  %6.1f  %10.1f  %s\n",
			r.Algorithm, r.AvgTimeMS, r.AvgMemoryBytes, r.SuccessRate*100,
			r.AvgSolutionLength, r.AvgStatesExplored, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
