package tui

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"

	"github.com/steviee/go-modlist/internal/resolve"
)

const (
	queryWidth  = 24
	statusWidth = 18
	// chromeLines is the number of lines around the row list
	chromeLines = 9
)

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(renderProgressBarWithPercentage(m.percent(), m.barWidth()))
	b.WriteString("\n\n")

	for _, row := range m.visibleRows() {
		b.WriteString(renderRow(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the import header
func (m Model) renderHeader() string {
	title := "go-modlist import"
	if m.title != "" {
		title += " " + m.title
	}
	progress := fmt.Sprintf("%d/%d  %s", m.resolved, len(m.rows), formatElapsed(m.now.Sub(m.startedAt)))

	totalWidth := 80
	if m.width > 0 {
		totalWidth = m.width
	}

	spacing := totalWidth - len([]rune(title)) - len(progress) - 4
	if spacing < 1 {
		spacing = 1
	}

	var b strings.Builder
	b.WriteString("╭")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╮\n")

	headerText := fmt.Sprintf(" %s%s%s ", title, strings.Repeat(" ", spacing), progress)
	b.WriteString("│")
	b.WriteString(headerStyle.Render(headerText))
	b.WriteString("│\n")

	b.WriteString("╰")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╯")

	return b.String()
}

// renderRow renders one query line
func renderRow(row Row) string {
	query := queryStyle.Render(fmt.Sprintf("%-*s", queryWidth, truncate(row.Query, queryWidth)))

	switch row.state {
	case rowPending:
		return "  " + query + "  " + statusPendingStyle.Render("· pending")
	case rowResolving:
		return "  " + query + "  " + statusPendingStyle.Render("… resolving")
	case rowSkipped:
		return "  " + query + "  " + statusPendingStyle.Render("- skipped")
	}

	o := row.Outcome
	if o == nil {
		return "  " + query
	}
	status := fmt.Sprintf("%-*s", statusWidth, statusIndicator(o.Status)+" "+string(o.Status))
	return "  " + query + "  " + statusStyle(o.Status).Render(status) + "  " + describeOutcome(o)
}

// describeOutcome summarizes what was matched, or why not
func describeOutcome(o *resolve.Outcome) string {
	switch {
	case o.Mod != nil && o.File != nil:
		return fmt.Sprintf("%s (%s)  %s  %s",
			o.Mod.Title, o.Mod.Source.DisplayName(), o.File.Filename, units.HumanSize(float64(o.File.Size)))
	case o.Mod != nil && o.Status == resolve.StatusVersionMismatch:
		return fmt.Sprintf("%s (%s)  available: %s",
			o.Mod.Title, o.Mod.Source.DisplayName(), strings.Join(o.AvailableVersions, ", "))
	case o.Mod != nil:
		return fmt.Sprintf("%s (%s)", o.Mod.Title, o.Mod.Source.DisplayName())
	default:
		return o.Message
	}
}

// renderSummary renders the running totals
func (m Model) renderSummary() string {
	outcomes := make([]resolve.Outcome, 0, m.resolved)
	for _, row := range m.rows {
		if row.Outcome != nil {
			outcomes = append(outcomes, *row.Outcome)
		}
	}
	s := resolve.Summarize(outcomes)
	return fmt.Sprintf("%d found (%d with file), %d version mismatch, %d not found, %d errors",
		s.Found, s.WithFile, s.VersionMismatch, s.NotFound, s.Errors)
}

// renderFooter renders the key help
func (m Model) renderFooter() string {
	switch {
	case m.done:
		return footerStyle.Render("Import finished.")
	case m.cancelling:
		return footerStyle.Render("Cancelling after the current query...")
	default:
		return footerStyle.Render("[q] cancel")
	}
}

// visibleRows keeps the row being resolved on screen when the list is taller
// than the terminal
func (m Model) visibleRows() []Row {
	if m.height <= chromeLines || len(m.rows) <= m.height-chromeLines {
		return m.rows
	}

	window := m.height - chromeLines
	start := m.resolved - window/2
	if start < 0 {
		start = 0
	}
	if start+window > len(m.rows) {
		start = len(m.rows) - window
	}
	return m.rows[start : start+window]
}

func (m Model) percent() float64 {
	if len(m.rows) == 0 {
		return 100
	}
	return float64(m.resolved) / float64(len(m.rows)) * 100
}

func (m Model) barWidth() int {
	if m.width > 20 {
		return m.width - 8
	}
	return 40
}
