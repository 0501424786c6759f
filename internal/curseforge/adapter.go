package curseforge

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/steviee/go-modlist/internal/catalog"
)

const unknownAuthor = "Unknown"

// Adapter exposes a Client as the secondary catalog.
type Adapter struct {
	client *Client
}

var (
	_ catalog.Adapter      = (*Adapter)(nil)
	_ catalog.SlugSearcher = (*Adapter)(nil)
)

// NewAdapter wraps client in the catalog contract.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// Source returns catalog.SourceCurseForge.
func (a *Adapter) Source() catalog.Source {
	return catalog.SourceCurseForge
}

// Search runs a popularity-sorted mod search.
func (a *Adapter) Search(ctx context.Context, q catalog.SearchQuery) (catalog.SearchPage, error) {
	result, err := a.client.Search(ctx, &SearchOptions{
		Query:       q.Query,
		GameVersion: q.GameVersion,
		LoaderType:  loaderType(q.Loader),
		Index:       q.Offset,
		PageSize:    defaultSearchPageSize,
	})
	if err != nil {
		return catalog.SearchPage{}, upstream(err)
	}

	mods := make([]catalog.Mod, 0, len(result.Data))
	for i := range result.Data {
		mods = append(mods, result.Data[i].toMod())
	}
	return catalog.SearchPage{Mods: mods, Total: result.Pagination.TotalCount}, nil
}

// SearchBySlug finds a mod by exact slug. No match yields (nil, nil).
func (a *Adapter) SearchBySlug(ctx context.Context, slug string) (*catalog.Mod, error) {
	mod, err := a.client.SearchBySlug(ctx, slug)
	if err != nil {
		return nil, upstream(err)
	}
	if mod == nil {
		return nil, nil
	}
	m := mod.toMod()
	return &m, nil
}

// Lookup resolves numeric ids through /mods/{id} and anything else by slug.
func (a *Adapter) Lookup(ctx context.Context, identifier string) (*catalog.Mod, error) {
	identifier = strings.TrimSpace(identifier)
	id, err := strconv.Atoi(identifier)
	if err != nil || id <= 0 {
		return a.SearchBySlug(ctx, identifier)
	}

	mod, err := a.client.GetMod(ctx, id)
	if err != nil {
		if errors.Is(err, ErrModNotFound) {
			return nil, nil
		}
		return nil, upstream(err)
	}
	m := mod.toMod()
	return &m, nil
}

// ListFiles lists files with loader and version tags split apart.
func (a *Adapter) ListFiles(ctx context.Context, modID, gameVersion, loader string) ([]catalog.File, error) {
	id, err := strconv.Atoi(modID)
	if err != nil {
		return nil, upstream(ErrInvalidModID)
	}

	raw, err := a.client.GetFiles(ctx, id, &FilesOptions{
		GameVersion: gameVersion,
		LoaderType:  loaderType(loader),
		PageSize:    catalog.FilesPageSize,
	})
	if err != nil {
		return nil, upstream(err)
	}

	files := make([]catalog.File, 0, len(raw))
	for i := range raw {
		files = append(files, raw[i].toFile())
	}
	return files, nil
}

func loaderType(loader string) ModLoaderType {
	t, ok := LoaderTypeFor(strings.ToLower(loader))
	if !ok {
		return LoaderAny
	}
	return t
}

func upstream(err error) error {
	return catalog.NewUpstreamError(catalog.SourceCurseForge, statusCode(err), err)
}

func (m *Mod) toMod() catalog.Mod {
	mod := catalog.Mod{
		ID:          strconv.Itoa(m.ID),
		Source:      catalog.SourceCurseForge,
		Title:       m.Name,
		Description: m.Summary,
		Downloads:   int(m.DownloadCount),
		Author:      unknownAuthor,
		Slug:        m.Slug,
		Categories:  make([]string, 0, len(m.Categories)),
		NumericID:   m.ID,
	}
	if m.Logo != nil {
		mod.IconURL = m.Logo.URL
	}
	if len(m.Authors) > 0 && m.Authors[0].Name != "" {
		mod.Author = m.Authors[0].Name
	}
	for _, c := range m.Categories {
		mod.Categories = append(mod.Categories, c.Name)
	}
	return mod
}

func (f *File) toFile() catalog.File {
	gameVersions, loaders := catalog.SplitTags(f.GameVersions)
	file := catalog.File{
		ID:           strconv.Itoa(f.ID),
		Name:         f.DisplayName,
		Filename:     f.FileName,
		Size:         f.FileLength,
		GameVersions: gameVersions,
		Loaders:      loaders,
		Downloads:    int(f.DownloadCount),
		PublishedAt:  f.FileDate,
		Channel:      f.ReleaseType.Channel(),
	}
	if f.DownloadURL != nil {
		file.URL = *f.DownloadURL
	}
	return file
}

// Channel maps the numeric release type onto the shared vocabulary.
// Unknown values are treated as releases.
func (r ReleaseType) Channel() catalog.ReleaseChannel {
	switch r {
	case ReleaseTypeBeta:
		return catalog.ChannelBeta
	case ReleaseTypeAlpha:
		return catalog.ChannelAlpha
	default:
		return catalog.ChannelRelease
	}
}
