package core

// Puzzle is a validated initial configuration plus its fixed metadata.
type Puzzle struct {
	Initial State
	Info    CarInfo
	ExitRow int
}

// NewPuzzle validates the vehicles and builds the canonical initial state.
// Orientation characters are normalised to lowercase first.
func NewPuzzle(vehicles []Vehicle, exitRow int) (*Puzzle, error) {
	normalized := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		v.Orientation = v.Orientation.Normalize()
		normalized[i] = v
	}

	if err := Validate(normalized, exitRow); err != nil {
		return nil, err
	}

	state, info := Split(normalized)
	return &Puzzle{
		Initial: state,
		Info:    info,
		ExitRow: exitRow,
	}, nil
}

// IsSolved reports whether the target is horizontal on the exit row with its
// rightmost cell in the last column.
func IsSolved(s State, info CarInfo, exitRow int) bool {
	p, ok := s.Find(Target)
	if !ok {
		return false
	}
	spec := info[Target]
	return spec.Orientation == Horizontal &&
		p.Y == exitRow &&
		p.X+spec.Length-1 == Size-1
}

// Solved reports whether s is a goal state of this puzzle.
func (p *Puzzle) Solved(s State) bool {
	return IsSolved(s, p.Info, p.ExitRow)
}

// Successors enumerates every legal slide from s.
func (p *Puzzle) Successors(s State) []Successor {
	return Successors(s, p.Info)
}

// Heuristic returns the blocker-chain lower bound for s.
func (p *Puzzle) Heuristic(s State) int {
	return Heuristic(s, p.Info, p.ExitRow)
}

// Board renders s on this puzzle's grid.
func (p *Puzzle) Board(s State) Board {
	return BuildBoard(s, p.Info)
}
