package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

func laneLevel(t *testing.T) *core.Puzzle {
	t.Helper()
	p, err := core.NewPuzzle([]core.Vehicle{
		{Name: 'A', X: 0, Y: 2, Orientation: core.Horizontal, Length: 2},
		{Name: 'B', X: 3, Y: 0, Orientation: core.Vertical, Length: 3},
		{Name: 'C', X: 5, Y: 1, Orientation: core.Vertical, Length: 2},
		{Name: 'D', X: 0, Y: 3, Orientation: core.Horizontal, Length: 3},
		{Name: 'E', X: 2, Y: 4, Orientation: core.Vertical, Length: 2},
		{Name: 'F', X: 3, Y: 5, Orientation: core.Horizontal, Length: 2},
	}, core.DefaultExitRow)
	require.NoError(t, err)
	return p
}

// stopClock makes every clock read after the first one land an hour later.
func stopClock(t *testing.T) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now = func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return base.Add(time.Hour)
	}
	t.Cleanup(func() { now = time.Now })
}

func TestTimeout(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			stopClock(t)
			f := factories[name]
			res := f(laneLevel(t), Options{}.withDefaults()).Solve()

			assert.True(t, res.TimedOut)
			assert.False(t, res.Solved)
			assert.Empty(t, res.Path)
			assert.Equal(t, 0, res.FinalCost)
			assert.Equal(t, 0, res.NodesExpanded)
			assert.Equal(t, time.Hour, res.Elapsed)
		})
	}
}

type searcher interface {
	search(ctx *searchContext) outcome
}

// TestParentTableCoversPath checks that every intermediate unit state of the
// returned path was reached by the search and recorded.
func TestParentTableCoversPath(t *testing.T) {
	for _, name := range Names() {
		for _, packed := range []bool{false, true} {
			p := laneLevel(t)
			opts := Options{PackedTable: packed}.withDefaults()
			s := factories[name](p, opts)

			withCost := name == "UCS" || name == "A*"
			ctx := newSearchContext(p, opts, withCost)
			o := s.(searcher).search(ctx)
			require.Equal(t, reached, o, "%s packed=%v", name, packed)
			res := ctx.finish(name, o)

			states, err := core.Replay(p.Initial, p.Info, res.Path)
			require.NoError(t, err)
			for i, st := range states {
				assert.True(t, ctx.table.Has(core.Encode(st)), "%s packed=%v: state %d missing", name, packed, i)
			}
		}
	}
}

func TestBestFirstRecordsCosts(t *testing.T) {
	p := laneLevel(t)
	opts := Options{}.withDefaults()
	ctx := newSearchContext(p, opts, true)
	require.Equal(t, reached, bestFirst(ctx, p.Heuristic))

	goal, ok := ctx.table.Get(ctx.goal)
	require.True(t, ok)
	assert.Equal(t, 21, goal.G)
	assert.Equal(t, goal.G, goal.F)

	root, ok := ctx.table.Get(core.Encode(p.Initial))
	require.True(t, ok)
	assert.False(t, root.HasMove)
	assert.Equal(t, 0, root.G)
	assert.Equal(t, p.Heuristic(p.Initial), root.F)
}

func TestSameVehicleSuppressed(t *testing.T) {
	p := laneLevel(t)
	ctx := newSearchContext(p, Options{}.withDefaults(), false)
	root := ctx.root(0, 0)

	for _, succ := range ctx.successors(root) {
		key := core.Encode(succ.State)
		ctx.table.Put(key, core.Entry{Parent: root.key, Move: succ.Move, HasMove: true})
		for _, next := range ctx.successors(node{key: key, state: succ.State}) {
			assert.NotEqual(t, succ.Move.Name, next.Move.Name, "after %v", succ.Move)
		}
	}
}

func TestOpenSetOrder(t *testing.T) {
	open := newOpenSet()
	mk := func(name byte) node {
		s := core.State{{Name: name}}
		return node{key: core.Encode(s), state: s}
	}

	open.upsert(mk('A'), 5)
	open.upsert(mk('B'), 3)
	open.upsert(mk('C'), 5)
	open.upsert(mk('D'), 3)
	// Decrease-key moves A ahead of everything.
	open.upsert(mk('A'), 1)
	require.Equal(t, 4, open.len())

	var got []byte
	var prios []int
	for open.len() > 0 {
		n, prio := open.pop()
		got = append(got, n.state[0].Name)
		prios = append(prios, prio)
	}
	assert.Equal(t, "ABDC", string(got))
	assert.Equal(t, []int{1, 3, 3, 5}, prios)
}

func TestFIFOReclaim(t *testing.T) {
	var q fifo
	for i := range 3000 {
		q.push(node{depth: i})
	}
	for i := range 2500 {
		require.Equal(t, i, q.pop().depth)
	}
	assert.Equal(t, 500, q.len())
	assert.Less(t, q.head, 1025)
	assert.Equal(t, 2500, q.pop().depth)
}

func TestExpand(t *testing.T) {
	coarse := []core.Move{{Name: 'B', DY: 3}, {Name: 'A', DX: 4}}
	path := expand(coarse)
	require.Len(t, path, 7)
	for _, m := range path[:3] {
		assert.Equal(t, core.Move{Name: 'B', DY: 1}, m)
	}
	for _, m := range path[3:] {
		assert.Equal(t, core.Move{Name: 'A', DX: 1}, m)
	}
}
