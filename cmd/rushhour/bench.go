package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rushhour/internal/bench"
	"github.com/vovakirdan/rushhour/internal/games/rushhour/levels"
	"github.com/vovakirdan/rushhour/internal/storage"
)

var (
	flagAlgos  []string
	flagRuns   int
	flagCSV    string
	flagNoSave bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [level-id...]",
	Short: "Benchmark strategies over levels",
	Long: `Run every strategy on every level (or only the given level IDs) and
report average time, memory, success rate, solution length and states explored.

Results are printed as CSV (or written to --csv) and recorded in the history
database unless --no-save is given.

Examples:
  rushhour bench
  rushhour bench lvl03 lvl04 --algos UCS,A* --runs 10
  rushhour bench --csv results/bench.csv`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().StringSliceVar(&flagAlgos, "algos", nil, "Strategies to compare (default from config)")
	benchCmd.Flags().IntVar(&flagRuns, "runs", 0, "Repetitions per level and strategy")
	benchCmd.Flags().StringVar(&flagCSV, "csv", "", "Write results to this CSV file instead of stdout")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the history database")
}

func runBench(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger()

	loader := levels.NewLoader(cfg.Paths.Levels)
	var lvls []levels.Level
	if len(args) == 0 {
		all, err := loader.LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
		lvls = all
	} else {
		for _, id := range args {
			lvl, err := loader.Resolve(id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
				os.Exit(1)
			}
			lvls = append(lvls, lvl)
		}
	}
	if len(lvls) == 0 {
		fmt.Fprintf(os.Stderr, "No levels found in %s\n", cfg.Paths.Levels)
		os.Exit(1)
	}

	bc := bench.Config{
		Algorithms: cfg.Bench.Algorithms,
		Runs:       cfg.Bench.Runs,
		Options:    cfg.Solver.Options(),
		Logger:     logger,
	}
	if cmd.Flags().Changed("algos") {
		bc.Algorithms = flagAlgos
	}
	if cmd.Flags().Changed("runs") {
		bc.Runs = flagRuns
	}
	csvPath := cfg.Bench.CSVPath
	if cmd.Flags().Changed("csv") {
		csvPath = flagCSV
	}

	logger.Info("starting benchmark", "levels", len(lvls), "algorithms", bc.Algorithms, "runs", bc.Runs)

	rows, err := bench.Run(lvls, bc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if csvPath != "" {
		if err := bench.WriteCSVFile(csvPath, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
			os.Exit(1)
		}
		logger.Info("results written", "path", csvPath, "rows", len(rows))
	} else if err := bench.WriteCSV(os.Stdout, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}

	if flagNoSave {
		return
	}

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	if err := bench.Persist(store, rows); err != nil {
		logger.Warn("could not record results", "error", err)
	}
}
