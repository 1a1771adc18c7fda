package solver

import (
	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// bestFirst is the relaxation loop shared by UCS and A*. States are opened by
// priority g + h(s); a successor is (re)queued whenever it is new or its
// recorded g improves, including states already expanded, so an admissible
// but inconsistent h still yields an optimal cost.
func bestFirst(ctx *searchContext, h func(core.State) int) outcome {
	open := newOpenSet()
	h0 := h(ctx.puzzle.Initial)
	open.upsert(ctx.root(0, h0), h0)

	for open.len() > 0 {
		if ctx.timeUp() {
			return expired
		}
		cur, _ := open.pop()
		if ctx.visit(cur) {
			return reached
		}

		entry, _ := ctx.table.Get(cur.key)
		for _, succ := range ctx.successors(cur) {
			g := entry.G + succ.Cost
			key := core.Encode(succ.State)
			if prev, ok := ctx.table.Get(key); ok && g >= prev.G {
				continue
			}
			f := g + h(succ.State)
			ctx.table.Put(key, core.Entry{
				Parent:  cur.key,
				Move:    succ.Move,
				HasMove: true,
				G:       g,
				F:       f,
			})
			open.upsert(node{key: key, state: succ.State}, f)
		}
	}
	return exhausted
}

// ucs opens states by accumulated cost.
type ucs struct {
	puzzle *core.Puzzle
	opts   Options
}

func newUCS(p *core.Puzzle, opts Options) Strategy {
	return &ucs{puzzle: p, opts: opts}
}

func (s *ucs) Name() string { return "UCS" }

func (s *ucs) Solve() Result {
	ctx := newSearchContext(s.puzzle, s.opts, true)
	ctx.logger.Debug("search started", "strategy", s.Name(), "vehicles", len(s.puzzle.Initial))
	return ctx.finish(s.Name(), s.search(ctx))
}

func (s *ucs) search(ctx *searchContext) outcome {
	return bestFirst(ctx, func(core.State) int { return 0 })
}
