package config

import (
	_ "embed"
)

//go:embed defaults/rushhour.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when no file,
// not even the embedded one, can be read.
func DefaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Algorithm:      "A*",
			MaxDepth:       50,
			MaxTimeSeconds: 30,
		},
		Bench: BenchConfig{
			Algorithms: []string{"BFS", "DFS", "UCS", "A*"},
			Runs:       3,
		},
		Paths: PathsConfig{
			Levels:   "levels",
			Database: "~/.rushhour/history.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
