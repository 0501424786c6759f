package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/steviee/go-modlist/internal/catalog"
)

const (
	msgNotFoundBoth  = "not found on Modrinth or CurseForge"
	msgNotFoundNoKey = "not found on Modrinth; add a CurseForge API key to also search CurseForge"

	// mismatchPreview caps how many versions a merged mismatch message lists.
	mismatchPreview = 8
)

// SecondaryFactory builds the secondary catalog adapter for one API key.
type SecondaryFactory func(apiKey string) catalog.Adapter

// QueryResolver resolves one request into an outcome without failing.
type QueryResolver interface {
	Resolve(ctx context.Context, s Session, req Request) Outcome
}

// Orchestrator runs the primary resolver, then the secondary one when a key is
// present, and merges their results. It holds no per-call state.
type Orchestrator struct {
	primary   *Resolver
	secondary SecondaryFactory
}

var _ QueryResolver = (*Orchestrator)(nil)

// NewOrchestrator creates an orchestrator. secondary may be nil.
func NewOrchestrator(primary catalog.Adapter, secondary SecondaryFactory) *Orchestrator {
	return &Orchestrator{
		primary:   NewResolver(primary, Options{}),
		secondary: secondary,
	}
}

// Resolve never returns an error: failures and panics become StatusError outcomes.
func (o *Orchestrator) Resolve(ctx context.Context, s Session, req Request) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("resolver panicked", "query", req.Query, "panic", r)
			out = errorOutcome(req, fmt.Errorf("%v", r))
		}
	}()

	primary, err := o.primary.Resolve(ctx, req)
	if err != nil {
		return errorOutcome(req, err)
	}
	if primary != nil && primary.HasFile() {
		return *primary
	}

	if s.SecondaryAPIKey == "" || o.secondary == nil {
		if primary != nil {
			return *primary
		}
		return notFound(req, msgNotFoundNoKey)
	}

	secondary, err := NewResolver(o.secondary(s.SecondaryAPIKey), Options{RelaxFilters: true}).Resolve(ctx, req)
	if err != nil {
		return errorOutcome(req, err)
	}

	return merge(req, primary, secondary)
}

// merge combines two partial results, best first.
func merge(req Request, primary, secondary *Outcome) Outcome {
	is := func(o *Outcome, st Status) bool { return o != nil && o.Status == st }

	switch {
	case secondary != nil && secondary.HasFile():
		return *secondary
	case is(primary, StatusVersionMismatch) && is(secondary, StatusVersionMismatch):
		versions := UnionVersions(primary.AvailableVersions, secondary.AvailableVersions)
		return Outcome{
			Query:             req.Query,
			Status:            StatusVersionMismatch,
			Mod:               primary.Mod,
			AvailableVersions: versions,
			TargetVersion:     req.GameVersion,
			Message:           mergedMismatchMessage(req.GameVersion, versions),
		}
	case is(primary, StatusVersionMismatch):
		return *primary
	case is(secondary, StatusVersionMismatch):
		return *secondary
	case is(primary, StatusFound):
		return *primary
	case is(secondary, StatusFound):
		return *secondary
	default:
		return notFound(req, msgNotFoundBoth)
	}
}

func mergedMismatchMessage(gameVersion string, versions []string) string {
	preview := versions
	suffix := ""
	if len(preview) > mismatchPreview {
		preview = preview[:mismatchPreview]
		suffix = ", ..."
	}
	return fmt.Sprintf("found on Modrinth and CurseForge but neither has files for game version %s; available: %s%s",
		gameVersion, strings.Join(preview, ", "), suffix)
}

func notFound(req Request, msg string) Outcome {
	return Outcome{
		Query:         req.Query,
		Status:        StatusNotFound,
		TargetVersion: req.GameVersion,
		Message:       msg,
	}
}

func errorOutcome(req Request, err error) Outcome {
	return Outcome{
		Query:         req.Query,
		Status:        StatusError,
		TargetVersion: req.GameVersion,
		Message:       err.Error(),
	}
}
