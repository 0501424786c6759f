package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/steviee/go-modlist/internal/resolve"
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1BD96A")).
			Padding(0, 1)

	// Query column style
	queryStyle = lipgloss.NewStyle().
			Bold(true)

	// Status color styles
	statusFoundStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00FF00"))

	statusMismatchStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFF00"))

	statusNotFoundStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFA500"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF0000")).
				Bold(true)

	statusPendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#808080"))

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// statusStyle returns the style for a resolution status
func statusStyle(status resolve.Status) lipgloss.Style {
	switch status {
	case resolve.StatusFound:
		return statusFoundStyle
	case resolve.StatusVersionMismatch:
		return statusMismatchStyle
	case resolve.StatusNotFound:
		return statusNotFoundStyle
	case resolve.StatusError:
		return statusErrorStyle
	default:
		return lipgloss.NewStyle()
	}
}

// statusIndicator returns the status indicator symbol
func statusIndicator(status resolve.Status) string {
	switch status {
	case resolve.StatusFound:
		return "✓"
	case resolve.StatusVersionMismatch:
		return "~"
	case resolve.StatusNotFound:
		return "✗"
	case resolve.StatusError:
		return "!"
	default:
		return "?"
	}
}

// RenderStatus renders a coloured indicator and label for status. The plain
// CLI output uses it too.
func RenderStatus(status resolve.Status) string {
	return statusStyle(status).Render(statusIndicator(status) + " " + string(status))
}
