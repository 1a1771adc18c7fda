// Package solver implements the Rush Hour search strategies: breadth-first,
// depth-limited depth-first, uniform-cost and A*. All four share one search
// context (parent table, deadline, path reconstruction) and differ only in the
// order in which they open states.
package solver

import (
	"time"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// Strategy is a configured search over one puzzle.
type Strategy interface {
	// Solve runs the search to completion on the calling goroutine.
	Solve() Result

	// Name returns the strategy identifier ("BFS", "DFS", "UCS", "A*").
	Name() string
}

// Result is the outcome of a Solve call.
// On failure Path is empty and FinalCost is zero; the counters are still set.
type Result struct {
	Path          []core.Move // Unit moves, each covering exactly one cell
	NodesExpanded int         // States popped from the open set
	FinalCost     int         // Sum of steps times vehicle length along Path
	Solved        bool        // Whether the goal was reached
	TimedOut      bool        // Whether the deadline stopped the search
	Elapsed       time.Duration
}

// Map is the level description consumed by the factory.
type Map interface {
	Vehicles() []core.Vehicle
	ExitRow() int
}

// staticMap is a Map over a fixed vehicle list.
type staticMap struct {
	vehicles []core.Vehicle
	exitRow  int
}

func (m staticMap) Vehicles() []core.Vehicle { return m.vehicles }
func (m staticMap) ExitRow() int             { return m.exitRow }

// NewMap wraps a vehicle list and exit row as a Map.
func NewMap(vehicles []core.Vehicle, exitRow int) Map {
	return staticMap{vehicles: vehicles, exitRow: exitRow}
}
