package solver

import (
	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// dfs opens states in LIFO order and never extends a path beyond
// MaxDepth coarse moves. A state is reopened when it is reached again at a
// smaller depth, so any solution within MaxDepth is found. The first
// solution popped is returned.
type dfs struct {
	puzzle *core.Puzzle
	opts   Options
}

func newDFS(p *core.Puzzle, opts Options) Strategy {
	return &dfs{puzzle: p, opts: opts}
}

func (s *dfs) Name() string { return "DFS" }

func (s *dfs) Solve() Result {
	ctx := newSearchContext(s.puzzle, s.opts, false)
	ctx.logger.Debug("search started", "strategy", s.Name(), "max_depth", s.opts.MaxDepth)
	return ctx.finish(s.Name(), s.search(ctx))
}

func (s *dfs) search(ctx *searchContext) outcome {
	root := ctx.root(0, 0)
	depth := map[core.Key]int{root.key: 0}

	var open lifo
	open.push(root)

	for open.len() > 0 {
		if ctx.timeUp() {
			return expired
		}
		cur := open.pop()
		if depth[cur.key] < cur.depth {
			// Stale: reached more shallowly since this push.
			continue
		}
		if ctx.visit(cur) {
			return reached
		}
		if cur.depth >= s.opts.MaxDepth {
			continue
		}

		next := cur.depth + 1
		succs := ctx.successors(cur)
		// Push in reverse so the first generated successor is opened first.
		for i := len(succs) - 1; i >= 0; i-- {
			succ := succs[i]
			key := core.Encode(succ.State)
			if d, seen := depth[key]; seen && d <= next {
				continue
			}
			depth[key] = next
			ctx.table.Put(key, core.Entry{Parent: cur.key, Move: succ.Move, HasMove: true})
			open.push(node{key: key, state: succ.State, depth: next})
		}
	}
	return exhausted
}
