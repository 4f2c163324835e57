package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch renders one block of width cells per color.
func Swatch(colors []string, width int) string {
	if width <= 0 {
		width = 1
	}

	cell := strings.Repeat(" ", width)

	var b strings.Builder

	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render(cell))
	}

	return b.String()
}
