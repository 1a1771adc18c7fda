package core

// Heuristic estimates the remaining cost from s with a recursive blocker chain.
//
// The target pays its own length for every column still between it and the
// exit. Each vehicle sitting in the target's lane pays its length once, and so
// does every vehicle that obstructs all the ways that vehicle could clear the
// lane, recursively. A visited set keeps every vehicle counted at most once.
//
// Every counted vehicle must move at least one cell before the target can
// leave, so the sum never exceeds the true remaining cost.
func Heuristic(s State, info CarInfo, exitRow int) int {
	a, ok := s.Find(Target)
	if !ok {
		return 0
	}
	spec := info[Target]
	board := BuildBoard(s, info)

	right := a.X + spec.Length - 1
	h := (Size - 1 - right) * spec.Length

	visited := map[byte]bool{Target: true}
	for x := right + 1; x < Size; x++ {
		name := board[exitRow][x]
		if name == EmptyCell || visited[name] {
			continue
		}
		visited[name] = true
		h += info[name].Length
		h += blockerCost(&board, s, info, name, C(x, exitRow), visited)
	}
	return h
}

// blockerCost counts the vehicles that must move so that name can stop
// covering cell. A vehicle is counted only when it sits in every feasible
// clearing slide; recursion continues only when a single slide is feasible,
// because only then the obstructing cell is known.
func blockerCost(board *Board, s State, info CarInfo, name byte, cell Coord, visited map[byte]bool) int {
	i := s.Index(name)
	if i < 0 {
		return 0
	}
	options := clearingSweeps(s.Vehicle(i, info), cell)
	if len(options) == 0 {
		return 0
	}

	cost := 0
	for _, c := range options[0] {
		other := board.At(c)
		if other == EmptyCell || other == name || visited[other] {
			continue
		}
		if !inEverySweep(board, options[1:], other) {
			continue
		}
		visited[other] = true
		cost += info[other].Length
		if len(options) == 1 {
			cost += blockerCost(board, s, info, other, c, visited)
		}
	}
	return cost
}

// clearingSweeps returns, for each direction in which v can stop covering
// cell without leaving the grid, the cells v must pass through on the
// shortest such slide.
func clearingSweeps(v Vehicle, cell Coord) [][]Coord {
	pos, target := v.X, cell.X
	if v.Orientation == Vertical {
		pos, target = v.Y, cell.Y
	}
	at := func(axis int) Coord {
		if v.Orientation == Vertical {
			return C(v.X, axis)
		}
		return C(axis, v.Y)
	}

	var sweeps [][]Coord

	// Backward: the tail must end before target.
	if start := target - v.Length; start >= 0 {
		sweep := make([]Coord, 0, pos-start)
		for a := start; a < pos; a++ {
			sweep = append(sweep, at(a))
		}
		sweeps = append(sweeps, sweep)
	}

	// Forward: the head must start after target.
	if start := target + 1; start+v.Length <= Size {
		sweep := make([]Coord, 0, start-pos)
		for a := pos + v.Length; a < start+v.Length; a++ {
			sweep = append(sweep, at(a))
		}
		sweeps = append(sweeps, sweep)
	}

	return sweeps
}

// inEverySweep reports whether name occupies at least one cell of each sweep.
func inEverySweep(board *Board, sweeps [][]Coord, name byte) bool {
	for _, sweep := range sweeps {
		found := false
		for _, c := range sweep {
			if board.At(c) == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
