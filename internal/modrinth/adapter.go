package modrinth

import (
	"context"
	"errors"
	"strings"

	"github.com/steviee/go-modlist/internal/catalog"
)

const unknownAuthor = "Unknown"

// Adapter exposes a Client as the primary catalog.
type Adapter struct {
	client *Client
}

var _ catalog.Adapter = (*Adapter)(nil)

// NewAdapter wraps client in the catalog contract.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// Source returns catalog.SourceModrinth.
func (a *Adapter) Source() catalog.Source {
	return catalog.SourceModrinth
}

// Search runs a filtered mod search. A blank query yields an empty page.
func (a *Adapter) Search(ctx context.Context, q catalog.SearchQuery) (catalog.SearchPage, error) {
	result, err := a.client.SearchMods(ctx, q.Query, q.GameVersion, q.Loader, q.Offset)
	if errors.Is(err, ErrInvalidSearchQuery) {
		return catalog.SearchPage{Mods: []catalog.Mod{}}, nil
	}
	if err != nil {
		return catalog.SearchPage{}, upstream(err)
	}

	mods := make([]catalog.Mod, 0, len(result.Hits))
	for _, hit := range result.Hits {
		mods = append(mods, hit.toMod())
	}
	return catalog.SearchPage{Mods: mods, Total: result.TotalHits}, nil
}

// Lookup fetches a project by slug or id. A 404 yields (nil, nil).
func (a *Adapter) Lookup(ctx context.Context, identifier string) (*catalog.Mod, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, nil
	}

	project, err := a.client.GetProject(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return nil, nil
		}
		return nil, upstream(err)
	}

	mod := project.toMod()
	return &mod, nil
}

// ListFiles lists one file per version record, newest first.
func (a *Adapter) ListFiles(ctx context.Context, modID, gameVersion, loader string) ([]catalog.File, error) {
	filter := &VersionFilter{}
	if loader != "" {
		filter.Loaders = []string{strings.ToLower(loader)}
	}
	if gameVersion != "" {
		filter.GameVersions = []string{gameVersion}
	}

	versions, err := a.client.GetVersions(ctx, modID, filter)
	if err != nil {
		return nil, upstream(err)
	}

	if len(versions) > catalog.FilesPageSize {
		versions = versions[:catalog.FilesPageSize]
	}

	files := make([]catalog.File, 0, len(versions))
	for i := range versions {
		files = append(files, versions[i].toFile())
	}
	return files, nil
}

func upstream(err error) error {
	return catalog.NewUpstreamError(catalog.SourceModrinth, statusCode(err), err)
}

func (p Project) toMod() catalog.Mod {
	return catalog.Mod{
		ID:          p.ProjectID,
		Source:      catalog.SourceModrinth,
		Title:       p.Title,
		Description: p.Description,
		IconURL:     p.IconURL,
		Downloads:   p.Downloads,
		Author:      orUnknown(p.Author),
		Slug:        p.Slug,
		Categories:  nonNil(p.Categories),
	}
}

func (p ProjectDetails) toMod() catalog.Mod {
	return catalog.Mod{
		ID:          p.ID,
		Source:      catalog.SourceModrinth,
		Title:       p.Title,
		Description: p.Description,
		IconURL:     p.IconURL,
		Downloads:   p.Downloads,
		Author:      orUnknown(p.Team),
		Slug:        p.Slug,
		Categories:  nonNil(p.Categories),
	}
}

func (v *Version) toFile() catalog.File {
	f := catalog.File{
		ID:           v.ID,
		Name:         v.Name,
		GameVersions: nonNil(v.GameVersions),
		Loaders:      nonNil(v.Loaders),
		Downloads:    v.Downloads,
		PublishedAt:  v.DatePublished,
		Channel:      channel(v.VersionType),
	}
	if primary := PrimaryFile(v); primary != nil {
		f.Filename = primary.Filename
		f.URL = primary.URL
		f.Size = primary.Size
	}
	return f
}

func channel(versionType string) catalog.ReleaseChannel {
	switch catalog.ReleaseChannel(versionType) {
	case catalog.ChannelBeta:
		return catalog.ChannelBeta
	case catalog.ChannelAlpha:
		return catalog.ChannelAlpha
	case catalog.ChannelRelease:
		return catalog.ChannelRelease
	default:
		// unclassified; the selector treats it like alpha
		return catalog.ReleaseChannel(versionType)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknownAuthor
	}
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
