package solver

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// now is the clock polled against the deadline.
var now = time.Now

// outcome is how a search loop ended.
type outcome int

const (
	exhausted outcome = iota // Open set emptied before the goal
	reached                  // Goal popped
	expired                  // Deadline passed
)

// searchContext holds everything one Solve call owns.
type searchContext struct {
	puzzle   *core.Puzzle
	table    parentTable
	start    time.Time
	deadline time.Time
	expanded int
	goal     core.Key
	logger   *log.Logger
}

func newSearchContext(p *core.Puzzle, opts Options, withCost bool) *searchContext {
	start := now()
	return &searchContext{
		puzzle:   p,
		table:    newParentTable(opts, withCost),
		start:    start,
		deadline: start.Add(opts.MaxTime),
		logger:   opts.Logger,
	}
}

// root records the initial state and returns its open-set node.
func (c *searchContext) root(g, f int) node {
	key := core.Encode(c.puzzle.Initial)
	c.table.Put(key, core.Entry{G: g, F: f})
	return node{key: key, state: c.puzzle.Initial}
}

// timeUp is polled once per pop.
func (c *searchContext) timeUp() bool {
	return !now().Before(c.deadline)
}

// visit counts an expansion and reports whether n is the goal.
func (c *searchContext) visit(n node) bool {
	c.expanded++
	if c.puzzle.Solved(n.state) {
		c.goal = n.key
		return true
	}
	return false
}

// lastMover returns the vehicle whose move produced k, if any.
func (c *searchContext) lastMover(k core.Key) (byte, bool) {
	e, ok := c.table.Get(k)
	if !ok || !e.HasMove {
		return 0, false
	}
	return e.Move.Name, true
}

// successors expands n, dropping moves of the vehicle that just moved:
// the generator already emits every slide length, so a second consecutive
// slide of the same vehicle only duplicates paths.
func (c *searchContext) successors(n node) []core.Successor {
	all := c.puzzle.Successors(n.state)
	mover, ok := c.lastMover(n.key)
	if !ok {
		return all
	}
	out := all[:0]
	for _, s := range all {
		if s.Move.Name != mover {
			out = append(out, s)
		}
	}
	return out
}

// finish turns the loop outcome into a Result and logs it.
func (c *searchContext) finish(name string, o outcome) Result {
	res := Result{
		NodesExpanded: c.expanded,
		TimedOut:      o == expired,
		Elapsed:       now().Sub(c.start),
	}
	if o == reached {
		coarse := c.reconstruct(c.goal)
		res.Path = expand(coarse)
		res.FinalCost = core.PathCost(coarse, c.puzzle.Info)
		res.Solved = true
	}

	c.logger.Debug("search finished",
		"strategy", name,
		"solved", res.Solved,
		"timeout", res.TimedOut,
		"expanded", res.NodesExpanded,
		"reached", c.table.Len(),
		"cost", res.FinalCost,
		"moves", len(res.Path),
		"elapsed", res.Elapsed,
	)
	return res
}

// reconstruct follows parent pointers from goal back to the root and
// returns the coarse moves in forward order.
func (c *searchContext) reconstruct(goal core.Key) []core.Move {
	var moves []core.Move
	k := goal
	for range c.table.Len() {
		e, ok := c.table.Get(k)
		if !ok || !e.HasMove {
			break
		}
		moves = append(moves, e.Move)
		k = e.Parent
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
