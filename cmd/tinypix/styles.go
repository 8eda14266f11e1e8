package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// table renders rows as left-aligned columns with a styled header.
func table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i]).Render(c)
		}
		sb.WriteString("  " + strings.Join(parts, "  ") + "\n")
	}

	writeRow(header, headerStyle)
	for _, row := range rows {
		writeRow(row, lipgloss.NewStyle())
	}
	return sb.String()
}
