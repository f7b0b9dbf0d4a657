package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/padtris/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The seven piece colors
// follow the classic palette; lipgloss degrades them to the terminal's
// profile.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0D72")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("#0DC2FF")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0DFF72")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("#F538FF")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8E0D")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE138")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3877FF")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
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
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
