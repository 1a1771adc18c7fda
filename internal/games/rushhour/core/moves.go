package core

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned when a move cannot be applied to a state.
var ErrIllegalMove = errors.New("illegal move")

// Move slides one vehicle by (DX, DY). Exactly one of DX, DY is non-zero.
type Move struct {
	Name byte
	DX   int
	DY   int
}

// Steps returns the number of cells the move covers.
func (m Move) Steps() int {
	return abs(m.DX) + abs(m.DY)
}

// Units expands a slide into its single-cell moves.
func (m Move) Units() []Move {
	n := m.Steps()
	units := make([]Move, n)
	unit := Move{Name: m.Name, DX: sign(m.DX), DY: sign(m.DY)}
	for i := range n {
		units[i] = unit
	}
	return units
}

// String renders the move as e.g. "B down 3".
func (m Move) String() string {
	dir := "right"
	switch {
	case m.DX < 0:
		dir = "left"
	case m.DY < 0:
		dir = "up"
	case m.DY > 0:
		dir = "down"
	}
	return fmt.Sprintf("%c %s %d", m.Name, dir, m.Steps())
}

// Successor is one outgoing edge of the search graph.
type Successor struct {
	State State
	Move  Move
	Cost  int // Steps times vehicle length
}

// Successors enumerates every legal slide from s.
// Vehicles are visited in canonical order; for each, slides toward the
// origin (left/up) come before slides away from it, shortest first.
// Moving a vehicle never changes names, so successors stay canonical.
func Successors(s State, info CarInfo) []Successor {
	board := BuildBoard(s, info)
	out := make([]Successor, 0, 4*len(s))

	for i, p := range s {
		spec := info[p.Name]
		dx, dy := spec.Orientation.Delta()

		for _, dir := range [2]int{-1, 1} {
			for k := 1; k <= MaxSlide; k++ {
				// Cell newly entered by the head in the direction of motion.
				var entered Coord
				if dir < 0 {
					entered = C(p.X-dx*k, p.Y-dy*k)
				} else {
					entered = C(p.X+dx*(spec.Length-1+k), p.Y+dy*(spec.Length-1+k))
				}
				if !board.Free(entered) {
					break
				}

				next := s.Clone()
				next[i].X += dir * dx * k
				next[i].Y += dir * dy * k
				out = append(out, Successor{
					State: next,
					Move:  Move{Name: p.Name, DX: dir * dx * k, DY: dir * dy * k},
					Cost:  k * spec.Length,
				})
			}
		}
	}

	return out
}

// Apply performs a move on s and returns the resulting state.
// The vehicle must exist, the move must follow its axis and every cell swept
// by the slide must be free.
func Apply(s State, info CarInfo, m Move) (State, error) {
	i := s.Index(m.Name)
	if i < 0 {
		return nil, fmt.Errorf("%w: unknown vehicle %q", ErrIllegalMove, m.Name)
	}
	spec := info[m.Name]
	dx, dy := spec.Orientation.Delta()
	steps := m.Steps()
	if steps == 0 || (dx == 0 && m.DX != 0) || (dy == 0 && m.DY != 0) {
		return nil, fmt.Errorf("%w: %s does not follow %s axis", ErrIllegalMove, m, spec.Orientation)
	}

	board := BuildBoard(s, info)
	p := s[i]
	dir := sign(m.DX + m.DY)
	for k := 1; k <= steps; k++ {
		var entered Coord
		if dir < 0 {
			entered = C(p.X-dx*k, p.Y-dy*k)
		} else {
			entered = C(p.X+dx*(spec.Length-1+k), p.Y+dy*(spec.Length-1+k))
		}
		if !board.Free(entered) {
			return nil, fmt.Errorf("%w: %s blocked at %s", ErrIllegalMove, m, entered)
		}
	}

	next := s.Clone()
	next[i].X += m.DX
	next[i].Y += m.DY
	return next, nil
}

// Replay applies moves in order and returns every visited state,
// starting with s itself.
func Replay(s State, info CarInfo, moves []Move) ([]State, error) {
	states := make([]State, 0, len(moves)+1)
	states = append(states, s)
	cur := s
	for n, m := range moves {
		next, err := Apply(cur, info, m)
		if err != nil {
			return states, fmt.Errorf("move %d: %w", n, err)
		}
		states = append(states, next)
		cur = next
	}
	return states, nil
}

// PathCost returns the total cost of a move sequence: steps times length.
func PathCost(moves []Move, info CarInfo) int {
	total := 0
	for _, m := range moves {
		total += m.Steps() * info[m.Name].Length
	}
	return total
}

// Coarsen merges runs of consecutive moves that slide the same vehicle in
// the same direction. It is the inverse of expanding moves with Units.
func Coarsen(moves []Move) []Move {
	var out []Move
	for _, m := range moves {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Name == m.Name && sign(last.DX) == sign(m.DX) && sign(last.DY) == sign(m.DY) {
				last.DX += m.DX
				last.DY += m.DY
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
