package catalog

import "context"

// FilesPageSize caps how many files ListFiles returns for one project.
const FilesPageSize = 50

// Adapter normalizes one upstream catalog into the shared Mod/File model.
type Adapter interface {
	// Source reports which catalog this adapter talks to.
	Source() Source

	// Search runs a fuzzy search. Non-success responses fail with *UpstreamError.
	Search(ctx context.Context, q SearchQuery) (SearchPage, error)

	// Lookup resolves a slug or id directly. A missing project yields (nil, nil).
	Lookup(ctx context.Context, identifier string) (*Mod, error)

	// ListFiles lists files of a project. Empty filters return the full history,
	// capped at FilesPageSize.
	ListFiles(ctx context.Context, modID, gameVersion, loader string) ([]File, error)
}

// SlugSearcher is implemented by catalogs that can search by exact slug.
type SlugSearcher interface {
	SearchBySlug(ctx context.Context, slug string) (*Mod, error)
}
