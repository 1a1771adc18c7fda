package core

import "strings"

// Board is a dense occupancy grid indexed as [y][x].
// Each cell holds a vehicle name or EmptyCell.
type Board [Size][Size]byte

// BuildBoard fills a board from a state. Cells outside the grid are ignored,
// so an invalid state never panics here; Validate reports such states instead.
func BuildBoard(s State, info CarInfo) Board {
	var b Board
	for y := range Size {
		for x := range Size {
			b[y][x] = EmptyCell
		}
	}
	for _, p := range s {
		spec := info[p.Name]
		dx, dy := spec.Orientation.Delta()
		for i := range spec.Length {
			c := C(p.X+dx*i, p.Y+dy*i)
			if c.InBounds() {
				b[c.Y][c.X] = p.Name
			}
		}
	}
	return b
}

// At returns the content of the cell at c, or EmptyCell if c is off the grid.
func (b *Board) At(c Coord) byte {
	if !c.InBounds() {
		return EmptyCell
	}
	return b[c.Y][c.X]
}

// Free reports whether c is on the grid and unoccupied.
func (b *Board) Free(c Coord) bool {
	return c.InBounds() && b[c.Y][c.X] == EmptyCell
}

// Rows returns the board as six strings, top row first.
func (b *Board) Rows() []string {
	rows := make([]string, Size)
	for y := range Size {
		rows[y] = string(b[y][:])
	}
	return rows
}

// String returns the board as newline-separated rows.
func (b Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
