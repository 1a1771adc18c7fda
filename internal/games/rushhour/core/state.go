package core

import (
	"sort"
	"strings"
)

// Position is the mutable part of a vehicle: its name and top-left cell.
type Position struct {
	Name byte
	X    int
	Y    int
}

// State is a configuration of vehicles on the grid.
// A canonical state is sorted by name; equality and encoding assume that form.
type State []Position

// Split separates vehicles into their canonical positions and the CarInfo table.
func Split(vehicles []Vehicle) (State, CarInfo) {
	state := make(State, 0, len(vehicles))
	info := make(CarInfo, len(vehicles))
	for _, v := range vehicles {
		state = append(state, Position{Name: v.Name, X: v.X, Y: v.Y})
		info[v.Name] = Spec{Orientation: v.Orientation.Normalize(), Length: v.Length}
	}
	return state.Canonical(), info
}

// Canonical returns a copy of the state sorted by vehicle name.
func (s State) Canonical() State {
	out := s.Clone()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Clone returns a copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Index returns the slot of the named vehicle, or -1 if absent.
func (s State) Index(name byte) int {
	for i, p := range s {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Find returns the position of the named vehicle.
func (s State) Find(name byte) (Position, bool) {
	if i := s.Index(name); i >= 0 {
		return s[i], true
	}
	return Position{}, false
}

// Equal reports whether two states hold the same positions in the same order.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Vehicles joins the state with its CarInfo into full vehicle descriptors.
func (s State) Vehicles(info CarInfo) []Vehicle {
	out := make([]Vehicle, len(s))
	for i, p := range s {
		spec := info[p.Name]
		out[i] = Vehicle{
			Name:        p.Name,
			X:           p.X,
			Y:           p.Y,
			Orientation: spec.Orientation,
			Length:      spec.Length,
		}
	}
	return out
}

// Vehicle returns the full descriptor of the vehicle in slot i.
func (s State) Vehicle(i int, info CarInfo) Vehicle {
	spec := info[s[i].Name]
	return Vehicle{
		Name:        s[i].Name,
		X:           s[i].X,
		Y:           s[i].Y,
		Orientation: spec.Orientation,
		Length:      spec.Length,
	}
}

// String renders the state as "A(0,2) B(2,0)".
func (s State) String() string {
	var sb strings.Builder
	for i, p := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(p.Name)
		sb.WriteString(C(p.X, p.Y).String())
	}
	return sb.String()
}
