// Package core provides the board model, state encoding, move generation and
// heuristics for Rush Hour puzzles.
// This package is UI-agnostic and deterministic.
package core

import "fmt"

// Board geometry.
const (
	Size           = 6   // Width and height of the grid
	MaxSlide       = 5   // Largest single slide a vehicle can make
	DefaultExitRow = 2   // Exit row used by classic levels
	Target         = 'A' // Name of the vehicle that must reach the exit
	EmptyCell      = '.' // Board marker for a free cell
)

// Orientation is the axis along which a vehicle slides.
type Orientation byte

const (
	Horizontal Orientation = 'h'
	Vertical   Orientation = 'v'
)

// ParseOrientation parses a single-character orientation, case-insensitively.
func ParseOrientation(s string) (Orientation, bool) {
	if len(s) != 1 {
		return 0, false
	}
	o := Orientation(s[0]).Normalize()
	return o, o.Valid()
}

// Normalize lowercases an orientation character.
func (o Orientation) Normalize() Orientation {
	if o >= 'A' && o <= 'Z' {
		return o + ('a' - 'A')
	}
	return o
}

// Valid reports whether o is horizontal or vertical.
func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// String returns the single-character form of the orientation.
func (o Orientation) String() string {
	return string(rune(o))
}

// Delta returns the (dx, dy) offset of one forward step along the axis.
// Forward is right for horizontal and down for vertical (screen coordinates).
func (o Orientation) Delta() (dx, dy int) {
	if o == Vertical {
		return 0, 1
	}
	return 1, 0
}

// Vehicle describes one car or truck on the grid.
// (X, Y) is the leftmost cell for horizontal vehicles and the topmost for vertical ones.
type Vehicle struct {
	Name        byte
	X           int
	Y           int
	Orientation Orientation
	Length      int
}

// Cells returns the coordinates covered by the vehicle, head first.
func (v Vehicle) Cells() []Coord {
	dx, dy := v.Orientation.Normalize().Delta()
	cells := make([]Coord, v.Length)
	for i := range v.Length {
		cells[i] = C(v.X+dx*i, v.Y+dy*i)
	}
	return cells
}

// Tail returns the last cell covered by the vehicle.
func (v Vehicle) Tail() Coord {
	dx, dy := v.Orientation.Normalize().Delta()
	return C(v.X+dx*(v.Length-1), v.Y+dy*(v.Length-1))
}

// String returns a compact description like "B(2,0)v3".
func (v Vehicle) String() string {
	return fmt.Sprintf("%c(%d,%d)%s%d", v.Name, v.X, v.Y, v.Orientation, v.Length)
}

// Spec is the immutable part of a vehicle: what it is, not where it is.
type Spec struct {
	Orientation Orientation
	Length      int
}

// CarInfo maps vehicle names to their fixed orientation and length.
// It is derived once from the initial configuration and only read afterwards.
type CarInfo map[byte]Spec
