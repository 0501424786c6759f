package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderProgressBar creates a progress bar
// value: percentage (0-100)
// width: total width of the bar
func renderProgressBar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	filledWidth := int(math.Round(value / 100.0 * float64(width)))
	emptyWidth := width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)

	return lipgloss.NewStyle().
		Foreground(progressColor(value)).
		Render(filled + empty)
}

// renderProgressBarWithPercentage renders a progress bar with percentage text
func renderProgressBarWithPercentage(value float64, barWidth int) string {
	bar := renderProgressBar(value, barWidth)
	percentage := fmt.Sprintf("% 3.0f%%", value)
	return fmt.Sprintf("%s %s", bar, percentage)
}

// progressColor turns green once the import is complete
func progressColor(percentage float64) lipgloss.Color {
	if percentage >= 100 {
		return lipgloss.Color("#00FF00")
	}
	return lipgloss.Color("#00ADD8")
}

// formatElapsed formats a duration as mm:ss
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// truncate shortens s to maxLen runes
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
