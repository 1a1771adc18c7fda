package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// ParseGrid parses the plain-text level layout: optional "# key: value"
// header lines followed by six rows of six cells. Empty cells are '.',
// every other character names the vehicle covering that cell.
//
//	# id: lvl03
//	# name: Blocked lane
//	...D..
//	...D..
//	AACD..
//	..C...
//	......
//	......
//
// The exit row defaults to the row holding the target unless an exit_row
// header overrides it. Headers other than id, name and exit_row land in
// Metadata.
func ParseGrid(data []byte) (Level, error) {
	level := Level{ExitRow: -1}
	var rows []string

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			if err := level.applyHeader(strings.TrimSpace(line[1:])); err != nil {
				return Level{}, err
			}
		default:
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("scanning grid: %w", err)
	}

	if len(rows) != core.Size {
		return Level{}, fmt.Errorf("grid has %d rows, want %d", len(rows), core.Size)
	}

	cells := make(map[byte][]core.Coord)
	for y, row := range rows {
		if len(row) != core.Size {
			return Level{}, fmt.Errorf("row %d has %d cells, want %d", y, len(row), core.Size)
		}
		for x := 0; x < core.Size; x++ {
			if c := row[x]; c != core.EmptyCell {
				cells[c] = append(cells[c], core.C(x, y))
			}
		}
	}

	names := make([]byte, 0, len(cells))
	for name := range cells {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, name := range names {
		v, err := vehicleFromCells(name, cells[name])
		if err != nil {
			return Level{}, err
		}
		level.Vehicles = append(level.Vehicles, v)
		if name == core.Target && level.ExitRow < 0 {
			level.ExitRow = v.Y
		}
	}

	if level.ExitRow < 0 {
		level.ExitRow = core.DefaultExitRow
	}
	return level, nil
}

func (l *Level) applyHeader(h string) error {
	key, value, ok := strings.Cut(h, ":")
	if !ok {
		// Plain comment.
		return nil
	}
	key = strings.TrimSpace(strings.ToLower(key))
	value = strings.TrimSpace(value)

	switch key {
	case "id":
		l.ID = value
	case "name":
		l.Name = value
	case "exit_row":
		row, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("exit_row header: %w", err)
		}
		l.ExitRow = row
	default:
		if l.Metadata == nil {
			l.Metadata = make(map[string]string)
		}
		l.Metadata[key] = value
	}
	return nil
}

// vehicleFromCells recovers a vehicle from the cells drawn with its name.
// Cells arrive in row-major order, so the first one is the anchor.
func vehicleFromCells(name byte, cells []core.Coord) (core.Vehicle, error) {
	if len(cells) < 2 {
		return core.Vehicle{}, fmt.Errorf("vehicle %c covers a single cell", name)
	}

	head := cells[0]
	o := core.Horizontal
	if cells[1].X == head.X {
		o = core.Vertical
	}
	dx, dy := o.Delta()

	for i, c := range cells {
		if c != head.Add(i*dx, i*dy) {
			return core.Vehicle{}, fmt.Errorf("vehicle %c is not a straight contiguous run", name)
		}
	}

	return core.Vehicle{Name: name, X: head.X, Y: head.Y, Orientation: o, Length: len(cells)}, nil
}
