// Package tui renders Rush Hour boards and solutions for the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// RenderBoard draws a board inside the theme frame with an exit marker on
// exitRow. Adjacent cells of one vehicle share a single styled run.
func RenderBoard(b *core.Board, exitRow int, theme Theme) string {
	var sb strings.Builder

	for y := range core.Size {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < core.Size {
			name := b.At(core.C(x, y))

			// Collect consecutive cells with the same occupant
			var run strings.Builder
			for x < core.Size && b.At(core.C(x, y)) == name {
				run.WriteByte(name)
				if x < core.Size-1 {
					run.WriteByte(' ')
				}
				x++
			}

			sb.WriteString(cellStyle(name, theme).Render(run.String()))
		}

		if y == exitRow {
			sb.WriteString(theme.Exit.Render(" >"))
		} else {
			sb.WriteString("  ")
		}
	}

	return theme.Frame.Render(sb.String())
}

func cellStyle(name byte, theme Theme) lipgloss.Style {
	switch name {
	case core.EmptyCell:
		return theme.EmptyCell
	case core.Target:
		return theme.Target
	default:
		return theme.vehicleStyle(name)
	}
}

// Step is one frame of a rendered solution.
type Step struct {
	Caption string
	Board   *core.Board
}

// RenderSteps lays frames out left to right, wrapping to a new band whenever
// the next frame would overflow width. A width of zero or less never wraps.
func RenderSteps(steps []Step, exitRow, width int, theme Theme) string {
	var bands []string
	var band []string
	bandWidth := 0

	for _, st := range steps {
		frame := lipgloss.JoinVertical(lipgloss.Left,
			theme.Caption.Render(st.Caption),
			RenderBoard(st.Board, exitRow, theme),
		)
		w := lipgloss.Width(frame) + 1

		if width > 0 && len(band) > 0 && bandWidth+w > width {
			bands = append(bands, lipgloss.JoinHorizontal(lipgloss.Top, band...))
			band, bandWidth = nil, 0
		}
		band = append(band, frame, " ")
		bandWidth += w
	}
	if len(band) > 0 {
		bands = append(bands, lipgloss.JoinHorizontal(lipgloss.Top, band...))
	}

	return strings.Join(bands, "\n\n")
}

// Status renders a one-line verdict in the solved or unsolved style.
func Status(solved bool, text string, theme Theme) string {
	if solved {
		return theme.Solved.Render(text)
	}
	return theme.Unsolved.Render(text)
}
