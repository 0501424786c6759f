package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steviee/go-modlist/internal/resolve"
)

// RunFunc runs a batch with the given hooks.
type RunFunc func(ctx context.Context, hooks resolve.Hooks) ([]resolve.Outcome, error)

type runResult struct {
	outcomes []resolve.Outcome
	err      error
}

// Run shows the progress view while run resolves queries. Quitting the view
// cancels the batch; the outcomes produced so far are returned with the
// cancellation error.
func Run(ctx context.Context, title string, queries []string, run RunFunc, opts ...tea.ProgramOption) ([]resolve.Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(title, queries, cancel), opts...)

	finished := make(chan runResult, 1)
	go func() {
		outcomes, err := run(ctx, resolve.Hooks{
			OnEvent: func(e resolve.Event) { p.Send(progressMsg{event: e}) },
		})
		finished <- runResult{outcomes: outcomes, err: err}
		p.Send(doneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-finished
		return nil, fmt.Errorf("run progress view: %w", err)
	}

	// The view may exit before the batch, e.g. on a killed program
	cancel()
	result := <-finished
	return result.outcomes, result.err
}
