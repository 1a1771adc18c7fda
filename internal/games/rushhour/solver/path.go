package solver

import "github.com/vovakirdan/rushhour/internal/games/rushhour/core"

// expand converts coarse slides into single-cell moves.
func expand(coarse []core.Move) []core.Move {
	total := 0
	for _, m := range coarse {
		total += m.Steps()
	}
	path := make([]core.Move, 0, total)
	for _, m := range coarse {
		path = append(path, m.Units()...)
	}
	return path
}
