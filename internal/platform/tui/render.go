package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-canvas/internal/render"
)

// colorStyles maps render.Color to lipgloss styles.
var colorStyles = map[render.Color]lipgloss.Style{
	render.ColorDefault:       lipgloss.NewStyle(),
	render.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	render.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	render.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	render.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	render.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	render.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	render.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	render.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	render.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	render.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	render.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	render.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	render.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	render.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	render.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	render.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderSurface converts a Surface to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderSurface(s *render.Surface) string {
	return RenderSurfaceRows(s, 0, s.Height())
}

// RenderSurfaceRows renders the rows in [top, top+rows), the designer's
// viewport window onto a vertically unbounded canvas. Rows past the surface
// bottom render as blank lines so the viewport height stays stable.
func RenderSurfaceRows(s *render.Surface, top, rows int) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*rows*2 + rows)

	for i := range rows {
		y := top + i
		if i > 0 {
			sb.WriteRune('\n')
		}
		if y >= s.Height() {
			sb.WriteString(strings.Repeat(" ", s.Width()))
			continue
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[render.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
