// Package bench runs every configured strategy over a set of levels and
// aggregates time, memory, success and search-effort figures per
// (level, algorithm) pair.
package bench

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/levels"
	"github.com/vovakirdan/rushhour/internal/games/rushhour/solver"
)

// Config describes one benchmark sweep.
type Config struct {
	Algorithms []string
	Runs       int // Repetitions per pair; values below 1 mean 1
	Options    solver.Options
	Logger     *log.Logger
}

// Row is the aggregate of Runs solves of one algorithm on one level.
type Row struct {
	MapID             string
	Algorithm         string
	Runs              int
	AvgTime           time.Duration
	AvgMemory         float64 // Bytes allocated per solve
	SuccessRate       float64 // Fraction of runs that found a solution
	AvgSolutionLength float64 // Unit moves, averaged over successful runs
	AvgStatesExplored float64
}

// Run benchmarks every algorithm on every level, in level then algorithm order.
// Unknown algorithm names and invalid levels abort the sweep.
func Run(lvls []levels.Level, cfg Config) ([]Row, error) {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = solver.Names()
	}

	rows := make([]Row, 0, len(lvls)*len(cfg.Algorithms))
	for _, lvl := range lvls {
		for _, algo := range cfg.Algorithms {
			row, err := runPair(lvl, algo, cfg)
			if err != nil {
				return nil, fmt.Errorf("bench %s/%s: %w", lvl.ID, algo, err)
			}
			cfg.Logger.Info("benchmarked",
				"map", row.MapID,
				"algorithm", row.Algorithm,
				"avg_time", row.AvgTime,
				"success", row.SuccessRate,
				"states", row.AvgStatesExplored,
			)
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func runPair(lvl levels.Level, algo string, cfg Config) (Row, error) {
	var (
		elapsed  time.Duration
		alloc    uint64
		solved   int
		moves    int
		explored int
		name     string
	)

	for range cfg.Runs {
		s, err := solver.New(algo, lvl, cfg.Options)
		if err != nil {
			return Row{}, err
		}
		name = s.Name()

		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		res := s.Solve()
		runtime.ReadMemStats(&after)

		elapsed += res.Elapsed
		alloc += after.TotalAlloc - before.TotalAlloc
		explored += res.NodesExpanded
		if res.Solved {
			solved++
			moves += len(res.Path)
		}
	}

	n := float64(cfg.Runs)
	row := Row{
		MapID:             lvl.ID,
		Algorithm:         name,
		Runs:              cfg.Runs,
		AvgTime:           elapsed / time.Duration(cfg.Runs),
		AvgMemory:         float64(alloc) / n,
		SuccessRate:       float64(solved) / n,
		AvgStatesExplored: float64(explored) / n,
	}
	if solved > 0 {
		row.AvgSolutionLength = float64(moves) / float64(solved)
	}
	return row, nil
}
