package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for board rendering.
type Theme struct {
	// Grid cells
	Target    lipgloss.Style
	Vehicles  []lipgloss.Style // Picked by vehicle name
	EmptyCell lipgloss.Style
	Exit      lipgloss.Style

	// Frame around the grid
	Frame lipgloss.Style

	// Caption over each step
	Caption  lipgloss.Style
	Solved   lipgloss.Style
	Unsolved lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Target: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Bright red
		Vehicles: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
			lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
			lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Medium purple
			lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // Orange
			lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Hot pink
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // Blue
		},
		EmptyCell: lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Exit:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		Caption:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Solved:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Unsolved: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// vehicleStyle returns the style of the named vehicle.
func (t Theme) vehicleStyle(name byte) lipgloss.Style {
	if len(t.Vehicles) == 0 {
		return lipgloss.NewStyle()
	}
	return t.Vehicles[int(name)%len(t.Vehicles)]
}
