package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steviee/go-modlist/internal/resolve"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}
		m.now = time.Time(msg)
		return m, tickCmd()

	case progressMsg:
		m.applyEvent(msg.event)
		return m, nil

	case doneMsg:
		m.done = true
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
			slog.Error("import failed", "error", msg.err)
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress handles keyboard input. Quitting cancels the batch and waits
// for it to return so the outcomes so far are kept.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		if m.done {
			return m, tea.Quit
		}
		if !m.cancelling {
			m.cancelling = true
			slog.Debug("import cancelled by user", "resolved", m.resolved)
			if m.cancel != nil {
				m.cancel()
			}
		}
	}
	return m, nil
}

func (m *Model) applyEvent(e resolve.Event) {
	if e.Index < 0 || e.Index >= len(m.rows) {
		return
	}

	switch e.Kind {
	case resolve.EventStarted:
		m.rows[e.Index].state = rowResolving
	case resolve.EventResolved:
		m.rows[e.Index].state = rowDone
		m.rows[e.Index].Outcome = e.Outcome
		m.resolved++
	case resolve.EventCancelled:
		for i := e.Index; i < len(m.rows); i++ {
			if m.rows[i].state != rowDone {
				m.rows[i].state = rowSkipped
			}
		}
	}
}
