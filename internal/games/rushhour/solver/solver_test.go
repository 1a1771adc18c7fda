package solver_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
	"github.com/vovakirdan/rushhour/internal/games/rushhour/solver"
)

var strategies = []string{"BFS", "DFS", "UCS", "A*"}

func car(name byte, x, y int, o core.Orientation, length int) core.Vehicle {
	return core.Vehicle{Name: name, X: x, Y: y, Orientation: o, Length: length}
}

type fixture struct {
	name     string
	vehicles []core.Vehicle
	optimal  int // Cheapest cost-weighted solution
}

// fixtures are solvable levels with a hand-checked optimal cost.
var fixtures = []fixture{
	{
		name:     "open lane",
		vehicles: []core.Vehicle{car('A', 3, 2, 'h', 2)},
		optimal:  2,
	},
	{
		name: "truck blocker",
		vehicles: []core.Vehicle{
			car('A', 0, 2, 'h', 2),
			car('B', 2, 0, 'v', 3),
		},
		optimal: 3*3 + 4*2,
	},
	{
		name: "car and truck blockers",
		vehicles: []core.Vehicle{
			car('A', 0, 2, 'h', 2),
			car('C', 2, 2, 'v', 2),
			car('D', 3, 0, 'v', 3),
		},
		optimal: 1*2 + 3*3 + 4*2,
	},
	{
		name: "source sample with target on the exit row",
		vehicles: []core.Vehicle{
			car('A', 2, 2, 'h', 2),
			car('B', 0, 0, 'v', 2),
			car('C', 0, 2, 'h', 2),
			car('D', 3, 0, 'h', 3),
			car('E', 4, 3, 'v', 2),
			car('F', 1, 4, 'v', 2),
		},
		optimal: 2 * 2,
	},
	{
		name: "second level blocker",
		vehicles: []core.Vehicle{
			car('A', 0, 2, 'h', 2),
			car('B', 3, 0, 'v', 3),
			car('C', 5, 1, 'v', 2),
			car('D', 0, 3, 'h', 3),
			car('E', 2, 4, 'v', 2),
			car('F', 3, 5, 'h', 2),
		},
		optimal: 4*2 + 3*3 + 1*2 + 1*2,
	},
}

func solve(t *testing.T, name string, vehicles []core.Vehicle, opts solver.Options) solver.Result {
	t.Helper()
	s, err := solver.New(name, solver.NewMap(vehicles, core.DefaultExitRow), opts)
	require.NoError(t, err)
	return s.Solve()
}

func mustPuzzle(t *testing.T, vehicles []core.Vehicle) *core.Puzzle {
	t.Helper()
	p, err := core.NewPuzzle(vehicles, core.DefaultExitRow)
	require.NoError(t, err)
	return p
}

// checkPath replays a result and asserts it is a valid unit-move solution.
func checkPath(t *testing.T, p *core.Puzzle, res solver.Result) []core.State {
	t.Helper()
	for _, m := range res.Path {
		require.Equal(t, 1, m.Steps(), "move %v is not a unit move", m)
	}
	states, err := core.Replay(p.Initial, p.Info, res.Path)
	require.NoError(t, err)
	for _, s := range states {
		require.NoError(t, core.Validate(s.Vehicles(p.Info), p.ExitRow))
	}
	assert.True(t, p.Solved(states[len(states)-1]), "path does not end solved")
	assert.Equal(t, core.PathCost(res.Path, p.Info), res.FinalCost)
	return states
}

func TestScenarioOnlyTarget(t *testing.T) {
	vehicles := []core.Vehicle{car('A', 3, 2, 'h', 2)}

	for _, name := range strategies {
		t.Run(name, func(t *testing.T) {
			res := solve(t, name, vehicles, solver.Options{})
			require.True(t, res.Solved)
			assert.Equal(t, []core.Move{{Name: 'A', DX: 1}}, res.Path)
			assert.Equal(t, 2, res.FinalCost)
		})
	}
}

func TestScenarioTruckBlocker(t *testing.T) {
	vehicles := []core.Vehicle{
		car('A', 0, 2, 'h', 2),
		car('B', 2, 0, 'v', 3),
	}

	bfs := solve(t, "BFS", vehicles, solver.Options{})
	require.True(t, bfs.Solved)
	assert.Len(t, bfs.Path, 7)
	assert.Equal(t, 17, bfs.FinalCost)

	ucs := solve(t, "UCS", vehicles, solver.Options{})
	require.True(t, ucs.Solved)
	assert.Equal(t, 17, ucs.FinalCost)

	astar := solve(t, "A*", vehicles, solver.Options{})
	require.True(t, astar.Solved)
	assert.Equal(t, 17, astar.FinalCost)

	dfs := solve(t, "DFS", vehicles, solver.Options{})
	require.True(t, dfs.Solved)
	checkPath(t, mustPuzzle(t, vehicles), dfs)
}

func TestScenarioCarAndTruckBlockers(t *testing.T) {
	vehicles := []core.Vehicle{
		car('A', 0, 2, 'h', 2),
		car('C', 2, 2, 'v', 2),
		car('D', 3, 0, 'v', 3),
	}

	// Fewest coarse moves: C up 2, D down 3, A right 4.
	bfs := solve(t, "BFS", vehicles, solver.Options{})
	require.True(t, bfs.Solved)
	assert.Len(t, bfs.Path, 9)
	assert.Equal(t, 21, bfs.FinalCost)

	// Cheapest: C down 1 instead.
	for _, name := range []string{"UCS", "A*"} {
		res := solve(t, name, vehicles, solver.Options{})
		require.True(t, res.Solved, name)
		assert.Len(t, res.Path, 8, name)
		assert.Equal(t, 19, res.FinalCost, name)
	}

	dfs := solve(t, "DFS", vehicles, solver.Options{})
	require.True(t, dfs.Solved)
	checkPath(t, mustPuzzle(t, vehicles), dfs)
}

func TestScenarioSourceSampleOverlaps(t *testing.T) {
	// As given, the target and the truck share cell (3,0).
	vehicles := []core.Vehicle{
		car('A', 2, 0, 'h', 2),
		car('B', 0, 0, 'v', 2),
		car('C', 0, 2, 'h', 2),
		car('D', 3, 0, 'h', 3),
		car('E', 4, 3, 'v', 2),
		car('F', 1, 4, 'v', 2),
	}

	for _, name := range strategies {
		_, err := solver.New(name, solver.NewMap(vehicles, 2), solver.Options{})
		var verr core.ValidationError
		require.True(t, errors.As(err, &verr), "%s: %v", name, err)
		assert.Equal(t, core.CodeOverlap, verr.Code)
	}
}

func TestScenarioAlreadySolved(t *testing.T) {
	vehicles := []core.Vehicle{car('A', 4, 2, 'h', 2)}

	for _, name := range strategies {
		t.Run(name, func(t *testing.T) {
			res := solve(t, name, vehicles, solver.Options{})
			assert.True(t, res.Solved)
			assert.Empty(t, res.Path)
			assert.Equal(t, 0, res.FinalCost)
			assert.Equal(t, 1, res.NodesExpanded)
			assert.False(t, res.TimedOut)
		})
	}
}

func TestNoLegalMoves(t *testing.T) {
	vehicles := []core.Vehicle{
		car('A', 0, 2, 'h', 2),
		car('B', 2, 0, 'v', 3),
		car('C', 2, 3, 'v', 3),
	}

	for _, name := range strategies {
		t.Run(name, func(t *testing.T) {
			res := solve(t, name, vehicles, solver.Options{})
			assert.False(t, res.Solved)
			assert.False(t, res.TimedOut)
			assert.Empty(t, res.Path)
			assert.Equal(t, 0, res.FinalCost)
			assert.Equal(t, 1, res.NodesExpanded)
		})
	}
}

func TestUnsolvable(t *testing.T) {
	// A horizontal car sharing the target's row can never leave it.
	vehicles := []core.Vehicle{
		car('A', 0, 2, 'h', 2),
		car('B', 3, 2, 'h', 2),
	}

	for _, name := range strategies {
		res := solve(t, name, vehicles, solver.Options{})
		assert.False(t, res.Solved, name)
		assert.Empty(t, res.Path, name)
		assert.Greater(t, res.NodesExpanded, 1, name)
	}
}

func TestOptimalityAcrossStrategies(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			p := mustPuzzle(t, fx.vehicles)
			results := make(map[string]solver.Result)
			for _, name := range strategies {
				res := solve(t, name, fx.vehicles, solver.Options{})
				results[name] = res
				if res.Solved {
					checkPath(t, p, res)
				}
			}

			require.True(t, results["BFS"].Solved)
			require.True(t, results["UCS"].Solved)
			require.True(t, results["A*"].Solved)

			assert.Equal(t, fx.optimal, results["UCS"].FinalCost)
			assert.Equal(t, results["UCS"].FinalCost, results["A*"].FinalCost)
			assert.LessOrEqual(t, results["UCS"].FinalCost, results["BFS"].FinalCost)
			require.True(t, results["DFS"].Solved)
			assert.LessOrEqual(t, results["UCS"].FinalCost, results["DFS"].FinalCost)
		})
	}
}

func TestHeuristicAdmissibleAlongOptimalPath(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			p := mustPuzzle(t, fx.vehicles)
			res := solve(t, "UCS", fx.vehicles, solver.Options{})
			require.True(t, res.Solved)

			states := checkPath(t, p, res)
			for i, s := range states {
				remaining := core.PathCost(res.Path[i:], p.Info)
				assert.LessOrEqual(t, p.Heuristic(s), remaining, "state %d: %v", i, s)
			}
		})
	}
}

func TestPackedTableMatchesRecords(t *testing.T) {
	for _, fx := range fixtures {
		for _, name := range strategies {
			typed := solve(t, name, fx.vehicles, solver.Options{})
			packed := solve(t, name, fx.vehicles, solver.Options{PackedTable: true})

			assert.Equal(t, typed.Solved, packed.Solved, "%s/%s", fx.name, name)
			assert.Equal(t, typed.Path, packed.Path, "%s/%s", fx.name, name)
			assert.Equal(t, typed.FinalCost, packed.FinalCost, "%s/%s", fx.name, name)
			assert.Equal(t, typed.NodesExpanded, packed.NodesExpanded, "%s/%s", fx.name, name)
		}
	}
}

func TestDeterministic(t *testing.T) {
	fx := fixtures[len(fixtures)-1]
	for _, name := range strategies {
		first := solve(t, name, fx.vehicles, solver.Options{})
		second := solve(t, name, fx.vehicles, solver.Options{})
		assert.Equal(t, first.Path, second.Path, name)
		assert.Equal(t, first.NodesExpanded, second.NodesExpanded, name)
	}
}

func TestDFSDepthLimit(t *testing.T) {
	// Needs two coarse moves: B down 3, then A right 4.
	vehicles := []core.Vehicle{
		car('A', 0, 2, 'h', 2),
		car('B', 2, 0, 'v', 3),
	}

	shallow := solve(t, "DFS", vehicles, solver.Options{MaxDepth: 1})
	assert.False(t, shallow.Solved)
	assert.Empty(t, shallow.Path)

	deep := solve(t, "DFS", vehicles, solver.Options{MaxDepth: 2})
	assert.True(t, deep.Solved)
}

// randomLevel puts the target on the exit row and then tries n random
// placements, keeping those that leave the level valid.
func randomLevel(r *rand.Rand, n int) []core.Vehicle {
	vehicles := []core.Vehicle{car('A', r.IntN(4), core.DefaultExitRow, core.Horizontal, 2)}
	for range n {
		o := core.Horizontal
		if r.IntN(2) == 0 {
			o = core.Vertical
		}
		length := 2
		if r.IntN(4) == 0 {
			length = 3
		}
		v := car(byte('A'+len(vehicles)), r.IntN(core.Size), r.IntN(core.Size), o, length)
		candidate := append(slices.Clone(vehicles), v)
		if core.Validate(candidate, core.DefaultExitRow) == nil {
			vehicles = candidate
		}
	}
	return vehicles
}

// DFS bounded by the fewest slides BFS needs must still find a solution,
// including on levels where a state is first reached down a deep branch
// and later by a shorter one.
func TestDFSFindsSolutionsWithinBFSDepth(t *testing.T) {
	levels := make([][]core.Vehicle, 0, len(fixtures)+150)
	for _, fx := range fixtures {
		levels = append(levels, fx.vehicles)
	}
	r := rand.New(rand.NewPCG(7, 11))
	for range 150 {
		levels = append(levels, randomLevel(r, 10))
	}

	checked := 0
	for i, vehicles := range levels {
		bfs := solve(t, "BFS", vehicles, solver.Options{})
		if !bfs.Solved || len(bfs.Path) == 0 {
			continue
		}
		depth := len(core.Coarsen(bfs.Path))

		dfs := solve(t, "DFS", vehicles, solver.Options{MaxDepth: depth})
		if !assert.True(t, dfs.Solved, "level %d (%v): BFS needs %d slides %v", i, vehicles, depth, core.Coarsen(bfs.Path)) {
			continue
		}
		checkPath(t, mustPuzzle(t, vehicles), dfs)
		assert.LessOrEqual(t, len(core.Coarsen(dfs.Path)), depth, "level %d", i)
		checked++
	}
	assert.Greater(t, checked, 20)
}

func TestDFSSolvesLaneLevelAtMinimumDepth(t *testing.T) {
	vehicles := fixtures[len(fixtures)-1].vehicles
	bfs := solve(t, "BFS", vehicles, solver.Options{})
	require.True(t, bfs.Solved)
	depth := len(core.Coarsen(bfs.Path))

	tight := solve(t, "DFS", vehicles, solver.Options{MaxDepth: depth})
	require.True(t, tight.Solved)
	checkPath(t, mustPuzzle(t, vehicles), tight)

	short := solve(t, "DFS", vehicles, solver.Options{MaxDepth: depth - 1})
	assert.False(t, short.Solved)
}

func TestRegisterRejectsTakenNames(t *testing.T) {
	noop := func(p *core.Puzzle, opts solver.Options) solver.Strategy { return nil }

	assert.Panics(t, func() { solver.Register("bfs", noop) })
	assert.Panics(t, func() { solver.Register("Greedy", noop, "astar") })
	assert.Panics(t, func() { solver.Register("ASTAR", noop) })
	assert.Panics(t, func() { solver.Register("Greedy", noop, "G", "g") })

	// A rejected registration leaves nothing behind.
	_, ok := solver.Lookup("Greedy")
	assert.False(t, ok)
	canonical, ok := solver.Lookup("astar")
	require.True(t, ok)
	assert.Equal(t, "A*", canonical)
	assert.Equal(t, []string{"A*", "BFS", "DFS", "UCS"}, solver.Names())
}

func TestFactory(t *testing.T) {
	m := solver.NewMap([]core.Vehicle{car('A', 3, 2, 'h', 2)}, 2)

	tests := []struct {
		in   string
		want string
	}{
		{"BFS", "BFS"},
		{"bfs", "BFS"},
		{"DFS", "DFS"},
		{"ucs", "UCS"},
		{"A*", "A*"},
		{"a*", "A*"},
		{"astar", "A*"},
	}
	for _, tt := range tests {
		s, err := solver.New(tt.in, m, solver.Options{})
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, s.Name())
	}

	_, err := solver.New("IDA*", m, solver.Options{})
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)

	assert.Equal(t, []string{"A*", "BFS", "DFS", "UCS"}, solver.Names())
}

func TestDefaultOptions(t *testing.T) {
	opts := solver.DefaultOptions()
	assert.Equal(t, solver.DefaultMaxDepth, opts.MaxDepth)
	assert.Equal(t, solver.DefaultMaxTime, opts.MaxTime)
	assert.False(t, opts.PackedTable)
}
