package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar draws done/total as a bar of width cells plus a percentage.
// An empty list reads as 0%.
func ProgressBar(done, total, width int) string {
	t := Current()
	width = max(width, 5)
	ratio := 0.0
	if total > 0 {
		ratio = min(max(float64(done)/float64(total), 0), 1)
	}
	filled := int(ratio * float64(width))
	return fmt.Sprintf("%s%s %3d%%",
		t.Success.Render(strings.Repeat("█", filled)),
		t.Muted.Render(strings.Repeat("░", width-filled)),
		int(ratio*100))
}

// Panel frames lines with the current theme's border.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
