package solver

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// ErrUnknownStrategy is returned by New for names with no registered factory.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Factory builds a strategy over a validated puzzle.
type Factory func(p *core.Puzzle, opts Options) Strategy

var (
	factories = make(map[string]Factory)
	aliases   = make(map[string]string)
	mu        sync.RWMutex
)

func init() {
	Register("BFS", newBFS)
	Register("DFS", newDFS)
	Register("UCS", newUCS)
	Register("A*", newAStar, "ASTAR")
}

// Register adds a strategy factory under name and optional aliases.
// Lookup is case-insensitive. Panics if the name or any alias is already
// taken; nothing is registered in that case.
func Register(name string, f Factory, alias ...string) {
	mu.Lock()
	defer mu.Unlock()

	keys := make([]string, 0, len(alias)+1)
	for _, n := range append([]string{name}, alias...) {
		key := strings.ToUpper(n)
		if _, exists := aliases[key]; exists || slices.Contains(keys, key) {
			panic(fmt.Sprintf("solver: strategy %q already registered", n))
		}
		keys = append(keys, key)
	}

	factories[name] = f
	for _, key := range keys {
		aliases[key] = name
	}
}

// Names returns the canonical names of all registered strategies, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a possibly aliased, case-insensitive name to its canonical form.
func Lookup(name string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	canonical, ok := aliases[strings.ToUpper(strings.TrimSpace(name))]
	return canonical, ok
}

// New validates the map and returns the named strategy over it.
// Unknown names fail with ErrUnknownStrategy; invalid maps fail with a
// core.ValidationError.
func New(name string, m Map, opts Options) (Strategy, error) {
	canonical, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}

	puzzle, err := core.NewPuzzle(m.Vehicles(), m.ExitRow())
	if err != nil {
		return nil, err
	}

	mu.RLock()
	f := factories[canonical]
	mu.RUnlock()

	return f(puzzle, opts.withDefaults()), nil
}
