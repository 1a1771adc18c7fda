package solver

import (
	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// bfs opens states in FIFO order and returns a path with the fewest
// coarse moves. It records parent and move only.
type bfs struct {
	puzzle *core.Puzzle
	opts   Options
}

func newBFS(p *core.Puzzle, opts Options) Strategy {
	return &bfs{puzzle: p, opts: opts}
}

func (s *bfs) Name() string { return "BFS" }

func (s *bfs) Solve() Result {
	ctx := newSearchContext(s.puzzle, s.opts, false)
	ctx.logger.Debug("search started", "strategy", s.Name(), "vehicles", len(s.puzzle.Initial))
	return ctx.finish(s.Name(), s.search(ctx))
}

func (s *bfs) search(ctx *searchContext) outcome {
	var open fifo
	open.push(ctx.root(0, 0))

	for open.len() > 0 {
		if ctx.timeUp() {
			return expired
		}
		cur := open.pop()
		if ctx.visit(cur) {
			return reached
		}

		for _, succ := range ctx.successors(cur) {
			key := core.Encode(succ.State)
			if ctx.table.Has(key) {
				continue
			}
			ctx.table.Put(key, core.Entry{Parent: cur.key, Move: succ.Move, HasMove: true})
			open.push(node{key: key, state: succ.State})
		}
	}
	return exhausted
}
