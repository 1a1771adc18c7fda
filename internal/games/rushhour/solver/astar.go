package solver

import (
	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// astar opens states by g plus the blocker-chain estimate.
type astar struct {
	puzzle *core.Puzzle
	opts   Options
}

func newAStar(p *core.Puzzle, opts Options) Strategy {
	return &astar{puzzle: p, opts: opts}
}

func (s *astar) Name() string { return "A*" }

func (s *astar) Solve() Result {
	ctx := newSearchContext(s.puzzle, s.opts, true)
	ctx.logger.Debug("search started",
		"strategy", s.Name(),
		"vehicles", len(s.puzzle.Initial),
		"h0", s.puzzle.Heuristic(s.puzzle.Initial),
	)
	return ctx.finish(s.Name(), s.search(ctx))
}

func (s *astar) search(ctx *searchContext) outcome {
	return bestFirst(ctx, s.puzzle.Heuristic)
}
