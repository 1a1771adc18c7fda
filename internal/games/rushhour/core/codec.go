package core

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

// Sentinel separates the fields of a packed parent-table entry.
// Valid state and move bytes never take this value.
const Sentinel byte = 0xDC

var (
	// ErrMalformedKey is returned when a key is not a sequence of 3-byte vehicle records.
	ErrMalformedKey = errors.New("malformed state key")
	// ErrMalformedEntry is returned when a packed parent entry cannot be split.
	ErrMalformedEntry = errors.New("malformed parent entry")
)

// Key is the compact encoding of a canonical state: [name, x, y] per vehicle.
// It is used directly as a map key.
type Key string

// Encode packs a state into its key. Positions are written in name order,
// so every ordering of the same configuration gives the same key.
func Encode(s State) Key {
	if !sort.SliceIsSorted(s, func(i, j int) bool { return s[i].Name < s[j].Name }) {
		s = s.Canonical()
	}
	buf := make([]byte, 0, 3*len(s))
	for _, p := range s {
		buf = append(buf, p.Name, byte(p.X), byte(p.Y))
	}
	return Key(buf)
}

// Decode unpacks a key into a state.
func Decode(k Key) (State, error) {
	if len(k)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrMalformedKey, len(k))
	}
	s := make(State, len(k)/3)
	for i := range s {
		x, y := k[3*i+1], k[3*i+2]
		if x >= Size || y >= Size {
			return nil, fmt.Errorf("%w: coordinate (%d,%d) out of range", ErrMalformedKey, x, y)
		}
		s[i] = Position{Name: k[3*i], X: int(x), Y: int(y)}
	}
	return s, nil
}

// EncodeDelta stores a signed move component as a byte (two's complement mod 256).
func EncodeDelta(v int) byte {
	return byte(((v % 256) + 256) % 256)
}

// DecodeDelta reverses EncodeDelta.
func DecodeDelta(b byte) int {
	if b >= 128 && b != Sentinel {
		return int(b) - 256
	}
	return int(b)
}

// Entry is a parent-table record: how a state was first (or most cheaply) reached.
type Entry struct {
	Parent  Key  // Empty for the initial state
	Move    Move // Valid only when HasMove is true
	HasMove bool
	G       int // Accumulated cost
	F       int // G plus heuristic; equals G for uninformed searches
}

// EncodeEntry packs an entry as parent ‖ 0xDC ‖ move ‖ 0xDC ‖ g ‖ 0xDC ‖ f.
// With withCost false only parent and move are written.
func EncodeEntry(e Entry, withCost bool) []byte {
	buf := make([]byte, 0, len(e.Parent)+14)
	buf = append(buf, e.Parent...)
	buf = append(buf, Sentinel)
	if e.HasMove {
		buf = append(buf, e.Move.Name, EncodeDelta(e.Move.DX), EncodeDelta(e.Move.DY))
	}
	if !withCost {
		return buf
	}
	buf = append(buf, Sentinel)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(e.G))
	buf = append(buf, Sentinel)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(e.F))
	return buf
}

// DecodeEntry unpacks an entry written by EncodeEntry.
// Fields are read positionally: the cost words may legitimately contain 0xDC.
func DecodeEntry(b []byte) (Entry, error) {
	var e Entry

	sep := -1
	for i, c := range b {
		if c == Sentinel {
			sep = i
			break
		}
	}
	if sep < 0 || sep%3 != 0 {
		return e, fmt.Errorf("%w: missing parent separator", ErrMalformedEntry)
	}
	e.Parent = Key(b[:sep])
	rest := b[sep+1:]

	if len(rest) >= 3 && rest[0] != Sentinel {
		e.Move = Move{Name: rest[0], DX: DecodeDelta(rest[1]), DY: DecodeDelta(rest[2])}
		e.HasMove = true
		rest = rest[3:]
	}

	switch len(rest) {
	case 0:
		return e, nil
	case 10:
		if rest[0] != Sentinel || rest[5] != Sentinel {
			return e, fmt.Errorf("%w: bad cost separators", ErrMalformedEntry)
		}
		e.G = int(binary.LittleEndian.Uint32(rest[1:5]))
		e.F = int(binary.LittleEndian.Uint32(rest[6:10]))
		return e, nil
	default:
		return e, fmt.Errorf("%w: %d trailing bytes", ErrMalformedEntry, len(rest))
	}
}
