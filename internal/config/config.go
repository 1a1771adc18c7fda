// Package config provides YAML-based configuration loading for the solver,
// the benchmark harness and the file locations the CLI works with.
package config

import (
	"time"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/solver"
)

// Config is the full rushhour configuration file.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Bench  BenchConfig  `yaml:"bench"`
	Paths  PathsConfig  `yaml:"paths"`
}

// SolverConfig defines how a single solve runs.
type SolverConfig struct {
	Algorithm      string  `yaml:"algorithm"`        // "BFS", "DFS", "UCS" or "A*"
	MaxDepth       int     `yaml:"max_depth"`        // DFS coarse-move bound
	MaxTimeSeconds float64 `yaml:"max_time_seconds"` // Wall-clock budget per solve
	PackedTable    bool    `yaml:"packed_table"`     // Byte-packed parent entries
}

// BenchConfig defines the benchmark sweep.
type BenchConfig struct {
	Algorithms []string `yaml:"algorithms"`
	Runs       int      `yaml:"runs"`     // Repetitions per (level, algorithm)
	CSVPath    string   `yaml:"csv_path"` // Empty writes to stdout
}

// PathsConfig points at the level directory and the history database.
type PathsConfig struct {
	Levels   string `yaml:"levels"`
	Database string `yaml:"database"` // "~" expands to the home directory
}

// Options converts the solver section into solver options.
func (c SolverConfig) Options() solver.Options {
	return solver.Options{
		MaxDepth:    c.MaxDepth,
		MaxTime:     time.Duration(c.MaxTimeSeconds * float64(time.Second)),
		PackedTable: c.PackedTable,
	}
}

// normalize replaces missing or nonsensical values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.Solver.Algorithm == "" {
		c.Solver.Algorithm = def.Solver.Algorithm
	}
	if c.Solver.MaxDepth <= 0 {
		c.Solver.MaxDepth = def.Solver.MaxDepth
	}
	if c.Solver.MaxTimeSeconds <= 0 {
		c.Solver.MaxTimeSeconds = def.Solver.MaxTimeSeconds
	}
	if len(c.Bench.Algorithms) == 0 {
		c.Bench.Algorithms = def.Bench.Algorithms
	}
	if c.Bench.Runs <= 0 {
		c.Bench.Runs = def.Bench.Runs
	}
	if c.Paths.Levels == "" {
		c.Paths.Levels = def.Paths.Levels
	}
	if c.Paths.Database == "" {
		c.Paths.Database = def.Paths.Database
	}
}
