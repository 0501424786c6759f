package resolve

import (
	"context"
	"log/slog"
	"time"
)

// DefaultDelay is the pause between two queries of a batch.
const DefaultDelay = 300 * time.Millisecond

// EventKind names a batch progress step.
type EventKind string

const (
	EventStarted   EventKind = "started"
	EventResolved  EventKind = "resolved"
	EventCancelled EventKind = "cancelled"
)

// Event reports batch progress. Index is zero-based.
type Event struct {
	Kind    EventKind
	Index   int
	Total   int
	Query   string
	Outcome *Outcome
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Batch resolves many queries one at a time with a fixed pause in between.
type Batch struct {
	resolver QueryResolver
	delay    time.Duration
	hooks    Hooks
}

// NewBatch creates a batch runner. A negative delay is treated as zero.
func NewBatch(resolver QueryResolver, delay time.Duration, hooks Hooks) *Batch {
	if delay < 0 {
		delay = 0
	}
	return &Batch{resolver: resolver, delay: delay, hooks: hooks}
}

// Run resolves every query using template for version, loader and auto-pick.
// On cancellation it stops and returns the outcomes produced so far together
// with the context error. Per-query failures never stop the batch.
func (b *Batch) Run(ctx context.Context, s Session, queries []string, template Request) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(queries))

	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			b.cancelled(i, len(queries), q)
			return outcomes, err
		}

		b.emit(Event{Kind: EventStarted, Index: i, Total: len(queries), Query: q})

		req := template
		req.Query = q
		outcome := b.resolver.Resolve(ctx, s, req)
		outcomes = append(outcomes, outcome)

		b.emit(Event{Kind: EventResolved, Index: i, Total: len(queries), Query: q, Outcome: &outcome})

		slog.Debug("batch query resolved",
			"index", i,
			"query", q,
			"status", outcome.Status)

		if i == len(queries)-1 || b.delay == 0 {
			continue
		}

		timer := time.NewTimer(b.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			b.cancelled(i+1, len(queries), queries[i+1])
			return outcomes, ctx.Err()
		}
	}

	return outcomes, nil
}

func (b *Batch) cancelled(index, total int, query string) {
	slog.Info("batch cancelled",
		"completed", index,
		"total", total)
	b.emit(Event{Kind: EventCancelled, Index: index, Total: total, Query: query})
}

func (b *Batch) emit(e Event) {
	if b.hooks.OnEvent != nil {
		b.hooks.OnEvent(e)
	}
}
