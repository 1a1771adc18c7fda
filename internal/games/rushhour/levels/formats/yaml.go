// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	ExitRow  *int              `yaml:"exit_row,omitempty"`
	Vehicles []YAMLVehicle     `yaml:"vehicles"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLVehicle represents a single vehicle in YAML format.
type YAMLVehicle struct {
	Name        string `yaml:"name"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Orientation string `yaml:"orientation"` // "h" or "v", either case
	Length      int    `yaml:"length"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	ExitRow  int
	Vehicles []core.Vehicle
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
// Structural checks (bounds, overlaps, target placement) are left to core.Validate.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	exitRow := core.DefaultExitRow
	if yl.ExitRow != nil {
		exitRow = *yl.ExitRow
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		ExitRow:  exitRow,
		Vehicles: make([]core.Vehicle, 0, len(yl.Vehicles)),
		Metadata: yl.Metadata,
	}

	for i, yv := range yl.Vehicles {
		if len(yv.Name) != 1 {
			return Level{}, fmt.Errorf("vehicle %d: name %q must be a single character", i, yv.Name)
		}
		o, ok := core.ParseOrientation(yv.Orientation)
		if !ok {
			return Level{}, fmt.Errorf("vehicle %s: invalid orientation %q", yv.Name, yv.Orientation)
		}
		level.Vehicles = append(level.Vehicles, core.Vehicle{
			Name:        yv.Name[0],
			X:           yv.X,
			Y:           yv.Y,
			Orientation: o,
			Length:      yv.Length,
		})
	}

	return level, nil
}

// MarshalYAML renders a level back into the YAML file layout.
func MarshalYAML(l Level) ([]byte, error) {
	exitRow := l.ExitRow
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		ExitRow:  &exitRow,
		Metadata: l.Metadata,
	}
	for _, v := range l.Vehicles {
		yl.Vehicles = append(yl.Vehicles, YAMLVehicle{
			Name:        string(v.Name),
			X:           v.X,
			Y:           v.Y,
			Orientation: v.Orientation.String(),
			Length:      v.Length,
		})
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
