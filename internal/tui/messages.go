package tui

import (
	"time"

	"github.com/steviee/go-modlist/internal/resolve"
)

// tickMsg is sent on every refresh tick
type tickMsg time.Time

// progressMsg carries one batch event
type progressMsg struct {
	event resolve.Event
}

// doneMsg is sent when the batch returns
type doneMsg struct {
	err error
}
