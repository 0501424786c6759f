package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/steviee/go-modlist/internal/catalog"
)

// Options tunes a single-catalog resolver.
type Options struct {
	// RelaxFilters retries each search variation without version and
	// loader filters when the filtered search comes back empty.
	RelaxFilters bool
}

// Resolver resolves queries against one catalog.
type Resolver struct {
	adapter catalog.Adapter
	opts    Options
}

// NewResolver creates a resolver for adapter.
func NewResolver(adapter catalog.Adapter, opts Options) *Resolver {
	return &Resolver{adapter: adapter, opts: opts}
}

// Source reports the catalog this resolver searches.
func (r *Resolver) Source() catalog.Source {
	return r.adapter.Source()
}

// Resolve looks the query up on this catalog. It returns (nil, nil) when the
// mod is not on the catalog. The only error is a done context.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Outcome, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, nil
	}

	mod, err := r.lookupDirect(ctx, query)
	if err != nil {
		return nil, err
	}
	if mod == nil {
		mod, err = r.searchVariations(ctx, query, req)
		if err != nil {
			return nil, err
		}
	}
	if mod == nil {
		slog.Debug("mod not found on catalog",
			"source", r.adapter.Source(),
			"query", query)
		return nil, nil
	}

	slog.Debug("mod identified",
		"source", r.adapter.Source(),
		"query", query,
		"id", mod.ID,
		"slug", mod.Slug)

	return r.validate(ctx, req, mod), nil
}

// lookupDirect resolves the query as an identifier. Upstream failures are misses.
// Slug-searching catalogs still get a plain Lookup for numeric project ids.
func (r *Resolver) lookupDirect(ctx context.Context, query string) (*catalog.Mod, error) {
	if ss, ok := r.adapter.(catalog.SlugSearcher); ok {
		if isNumericID(query) {
			mod, err := r.lookup(ctx, query)
			if err != nil || mod != nil {
				return mod, err
			}
		}
		for _, slug := range slugVariants(query) {
			mod, err := ss.SearchBySlug(ctx, slug)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				slog.Debug("slug search failed",
					"source", r.adapter.Source(),
					"slug", slug,
					"error", err)
				continue
			}
			if mod != nil {
				return mod, nil
			}
		}
		return nil, nil
	}

	return r.lookup(ctx, query)
}

func (r *Resolver) lookup(ctx context.Context, query string) (*catalog.Mod, error) {
	mod, err := r.adapter.Lookup(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Debug("direct lookup failed",
			"source", r.adapter.Source(),
			"query", query,
			"error", err)
		return nil, nil
	}
	return mod, nil
}

func isNumericID(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// searchVariations runs a search per query variation and stops at the first
// non-empty page.
func (r *Resolver) searchVariations(ctx context.Context, query string, req Request) (*catalog.Mod, error) {
	for _, variation := range Variations(query) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := r.adapter.Search(ctx, catalog.SearchQuery{
			Query:       variation,
			GameVersion: req.GameVersion,
			Loader:      req.Loader,
		})
		if err == nil && len(page.Mods) == 0 && r.opts.RelaxFilters && (req.GameVersion != "" || req.Loader != "") {
			page, err = r.adapter.Search(ctx, catalog.SearchQuery{Query: variation})
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Debug("search variation failed",
				"source", r.adapter.Source(),
				"variation", variation,
				"error", err)
			continue
		}
		if len(page.Mods) == 0 {
			continue
		}

		return pickMod(page.Mods, query, variation), nil
	}
	return nil, nil
}

// pickMod prefers an exact slug or title match over the top-ranked hit.
func pickMod(mods []catalog.Mod, query, variation string) *catalog.Mod {
	hyphenated := hyphenate(variation)
	for i := range mods {
		m := &mods[i]
		if strings.EqualFold(m.Slug, query) ||
			strings.EqualFold(m.Title, query) ||
			strings.EqualFold(m.Slug, hyphenated) {
			return m
		}
	}
	return &mods[0]
}

// validate attaches a compatible file or diagnoses a version mismatch.
// Listing failures degrade to a found outcome without a file.
func (r *Resolver) validate(ctx context.Context, req Request, mod *catalog.Mod) *Outcome {
	found := &Outcome{
		Query:         req.Query,
		Status:        StatusFound,
		Mod:           mod,
		TargetVersion: req.GameVersion,
	}

	if !req.AutoPick {
		return found
	}

	if req.GameVersion == "" {
		files, err := r.adapter.ListFiles(ctx, mod.ID, "", req.Loader)
		if err != nil {
			r.logListFailure(mod, err)
			return found
		}
		found.File = PickBestFile(files, "", req.Loader)
		return found
	}

	files, err := r.adapter.ListFiles(ctx, mod.ID, req.GameVersion, req.Loader)
	if err != nil {
		r.logListFailure(mod, err)
		return found
	}
	file := PickBestFile(files, req.GameVersion, req.Loader)

	if file == nil && req.Loader != "" {
		files, err = r.adapter.ListFiles(ctx, mod.ID, req.GameVersion, "")
		if err != nil {
			r.logListFailure(mod, err)
			return found
		}
		file = PickBestFile(files, req.GameVersion, "")
	}

	if file != nil {
		found.File = file
		return found
	}

	all, err := r.adapter.ListFiles(ctx, mod.ID, "", "")
	if err != nil {
		r.logListFailure(mod, err)
		return found
	}
	available := AvailableVersions(all)
	if len(available) == 0 {
		// nothing to report as an alternative
		return found
	}

	return &Outcome{
		Query:             req.Query,
		Status:            StatusVersionMismatch,
		Mod:               mod,
		AvailableVersions: available,
		TargetVersion:     req.GameVersion,
		Message: fmt.Sprintf("found on %s but no files for game version %s",
			r.adapter.Source().DisplayName(), req.GameVersion),
	}
}

func (r *Resolver) logListFailure(mod *catalog.Mod, err error) {
	slog.Warn("listing files failed, returning mod without file",
		"source", r.adapter.Source(),
		"mod", mod.Slug,
		"error", err)
}

// slugVariants returns the query, then spaces and underscores turned into hyphens.
func slugVariants(query string) []string {
	variants := []string{query}
	for _, v := range []string{hyphenate(query), strings.ReplaceAll(query, "_", "-")} {
		if !slices.Contains(variants, v) {
			variants = append(variants, v)
		}
	}
	return variants
}
