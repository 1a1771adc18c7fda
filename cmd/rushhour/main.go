// rushhour solves Rush Hour sliding-block puzzles and benchmarks the search
// strategies against each other.
//
// Usage:
//
//	rushhour levels               - List available levels
//	rushhour solve <id|file>      - Solve one level
//	rushhour bench [id...]        - Benchmark strategies over levels
//	rushhour history [id]         - Show recorded benchmark results
//	rushhour config               - Print the default configuration
//
// Global flags:
//
//	--levels <dir>   - Level directory (default from config: ./levels)
//	--db <path>      - History database (default from config: ~/.rushhour/history.db)
//	--config <path>  - Configuration file
//	--debug          - Log search internals to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rushhour/internal/config"
)

var (
	// Global flags
	flagLevels string
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rushhour",
	Short: "Rush Hour puzzle solver",
	Long: `rushhour searches for the way out of a 6x6 Rush Hour traffic jam.

Available commands:
  levels   - Show all available levels
  solve    - Solve a level with one strategy
  bench    - Compare strategies over many levels
  history  - View recorded benchmark results
  config   - Print the default configuration

Examples:
  rushhour levels
  rushhour solve lvl03 --algo UCS --show
  rushhour solve ./my-level.txt --algo DFS --max-depth 20
  rushhour bench --algos BFS,A* --runs 5 --csv results.csv
  rushhour history lvl03`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies the global flag overrides.
// Exits on failure.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagLevels != "" {
		cfg.Paths.Levels = flagLevels
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	return cfg
}

// newLogger builds the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rushhour",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
