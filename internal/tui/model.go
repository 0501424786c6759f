// Package tui renders the interactive progress view of a mod list import.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steviee/go-modlist/internal/resolve"
)

// rowState is the display state of one query.
type rowState int

const (
	rowPending rowState = iota
	rowResolving
	rowDone
	rowSkipped
)

// Row is one query of the import with its outcome once resolved.
type Row struct {
	Query   string
	state   rowState
	Outcome *resolve.Outcome
}

// Model is the bubbletea model for the import progress view.
type Model struct {
	title      string
	rows       []Row
	resolved   int
	startedAt  time.Time
	now        time.Time
	width      int
	height     int
	cancel     context.CancelFunc
	cancelling bool
	done       bool
	err        error
}

// NewModel creates a model for queries. cancel is called when the user quits.
func NewModel(title string, queries []string, cancel context.CancelFunc) Model {
	rows := make([]Row, len(queries))
	for i, q := range queries {
		rows[i] = Row{Query: q}
	}
	now := time.Now()
	return Model{
		title:     title,
		rows:      rows,
		startedAt: now,
		now:       now,
		cancel:    cancel,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Rows returns the rows in query order.
func (m Model) Rows() []Row {
	return m.rows
}

// Cancelled reports whether the user asked to stop the import.
func (m Model) Cancelled() bool {
	return m.cancelling
}

// tickCmd refreshes the elapsed time every 200ms
func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
