package resolve

import (
	"context"
	"strconv"

	"github.com/stretchr/testify/mock"

	"github.com/steviee/go-modlist/internal/catalog"
)

type mockAdapter struct {
	mock.Mock
	source catalog.Source
}

func newMockAdapter(source catalog.Source) *mockAdapter {
	return &mockAdapter{source: source}
}

func (m *mockAdapter) Source() catalog.Source {
	return m.source
}

func (m *mockAdapter) Search(ctx context.Context, q catalog.SearchQuery) (catalog.SearchPage, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(catalog.SearchPage), args.Error(1)
}

func (m *mockAdapter) Lookup(ctx context.Context, identifier string) (*catalog.Mod, error) {
	args := m.Called(ctx, identifier)
	mod, _ := args.Get(0).(*catalog.Mod)
	return mod, args.Error(1)
}

func (m *mockAdapter) ListFiles(ctx context.Context, modID, gameVersion, loader string) ([]catalog.File, error) {
	args := m.Called(ctx, modID, gameVersion, loader)
	files, _ := args.Get(0).([]catalog.File)
	return files, args.Error(1)
}

// mockSlugAdapter additionally supports exact slug search, like the secondary catalog.
type mockSlugAdapter struct {
	mockAdapter
}

func newMockSlugAdapter() *mockSlugAdapter {
	return &mockSlugAdapter{mockAdapter{source: catalog.SourceCurseForge}}
}

func (m *mockSlugAdapter) SearchBySlug(ctx context.Context, slug string) (*catalog.Mod, error) {
	args := m.Called(ctx, slug)
	mod, _ := args.Get(0).(*catalog.Mod)
	return mod, args.Error(1)
}

var noMod *catalog.Mod

func emptyPage() catalog.SearchPage {
	return catalog.SearchPage{Mods: []catalog.Mod{}}
}

func modrinthMod(id, slug, title string) *catalog.Mod {
	return &catalog.Mod{ID: id, Source: catalog.SourceModrinth, Slug: slug, Title: title, Author: "Unknown"}
}

func curseforgeMod(id int, slug, title string) *catalog.Mod {
	return &catalog.Mod{
		ID:        strconv.Itoa(id),
		Source:    catalog.SourceCurseForge,
		Slug:      slug,
		Title:     title,
		Author:    "Unknown",
		NumericID: id,
	}
}

func file(id string, channel catalog.ReleaseChannel, versions []string, loaders ...string) catalog.File {
	if loaders == nil {
		loaders = []string{}
	}
	return catalog.File{
		ID:           id,
		Name:         id,
		Filename:     id + ".jar",
		URL:          "https://cdn.example/" + id + ".jar",
		GameVersions: versions,
		Loaders:      loaders,
		Channel:      channel,
	}
}
