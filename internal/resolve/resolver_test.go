package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/steviee/go-modlist/internal/catalog"
)

var errUpstream = catalog.NewUpstreamError(catalog.SourceModrinth, 503, errors.New("service unavailable"))

func TestResolver_DirectLookupWithFile(t *testing.T) {
	sodium := modrinthMod("AANobbMI", "sodium", "Sodium")
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "sodium").Return(sodium, nil)
	adapter.On("ListFiles", mock.Anything, "AANobbMI", "1.20.1", "fabric").Return([]catalog.File{
		file("beta", catalog.ChannelBeta, []string{"1.20.1"}, "fabric"),
		file("release", catalog.ChannelRelease, []string{"1.20.1"}, "fabric"),
	}, nil)

	r := NewResolver(adapter, Options{})
	out, err := r.Resolve(context.Background(), Request{
		Query: "sodium", GameVersion: "1.20.1", Loader: "fabric", AutoPick: true,
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, StatusFound, out.Status)
	assert.Equal(t, sodium, out.Mod)
	require.NotNil(t, out.File)
	assert.Equal(t, "release", out.File.ID)
	assert.Equal(t, "1.20.1", out.TargetVersion)
	adapter.AssertExpectations(t)
	adapter.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestResolver_LoaderFallback(t *testing.T) {
	mod := modrinthMod("P7dR8mSH", "fabric-api", "Fabric API")
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "fabric-api").Return(mod, nil)
	adapter.On("ListFiles", mock.Anything, "P7dR8mSH", "1.20.1", "quilt").Return([]catalog.File{}, nil)
	adapter.On("ListFiles", mock.Anything, "P7dR8mSH", "1.20.1", "").Return([]catalog.File{
		file("fabric-only", catalog.ChannelRelease, []string{"1.20.1"}, "fabric"),
	}, nil)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
		Query: "fabric-api", GameVersion: "1.20.1", Loader: "quilt", AutoPick: true,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusFound, out.Status)
	require.NotNil(t, out.File)
	assert.Equal(t, "fabric-only", out.File.ID)
	adapter.AssertExpectations(t)
}

func TestResolver_VersionMismatch(t *testing.T) {
	sodium := modrinthMod("AANobbMI", "sodium", "Sodium")
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "sodium").Return(sodium, nil)
	adapter.On("ListFiles", mock.Anything, "AANobbMI", "1.20.5", "fabric").Return([]catalog.File{}, nil)
	adapter.On("ListFiles", mock.Anything, "AANobbMI", "1.20.5", "").Return([]catalog.File{}, nil)
	adapter.On("ListFiles", mock.Anything, "AANobbMI", "", "").Return([]catalog.File{
		file("v2", catalog.ChannelRelease, []string{"1.20.1"}, "fabric"),
		file("v1", catalog.ChannelRelease, []string{"1.20", "1.20.1"}, "fabric"),
	}, nil)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
		Query: "sodium", GameVersion: "1.20.5", Loader: "fabric", AutoPick: true,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusVersionMismatch, out.Status)
	assert.Equal(t, sodium, out.Mod)
	assert.Nil(t, out.File)
	assert.Equal(t, []string{"1.20.1", "1.20"}, out.AvailableVersions)
	assert.Equal(t, "1.20.5", out.TargetVersion)
	assert.Contains(t, out.Message, "Modrinth")
	assert.Contains(t, out.Message, "1.20.5")
	adapter.AssertExpectations(t)
}

func TestResolver_NoVersionsAnywhereIsFoundWithoutFile(t *testing.T) {
	mod := modrinthMod("x", "x-mod", "X")
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "x-mod").Return(mod, nil)
	adapter.On("ListFiles", mock.Anything, "x", "1.21", "").Return([]catalog.File{}, nil)
	adapter.On("ListFiles", mock.Anything, "x", "", "").Return([]catalog.File{}, nil)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
		Query: "x-mod", GameVersion: "1.21", AutoPick: true,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusFound, out.Status)
	assert.Nil(t, out.File)
	assert.Empty(t, out.AvailableVersions)
}

func TestResolver_ListingFailureDegrades(t *testing.T) {
	tests := []struct {
		name  string
		setup func(a *mockAdapter)
	}{
		{
			name: "first listing fails",
			setup: func(a *mockAdapter) {
				a.On("ListFiles", mock.Anything, "id", "1.20.1", "fabric").Return(nil, errUpstream)
			},
		},
		{
			name: "loader-free listing fails",
			setup: func(a *mockAdapter) {
				a.On("ListFiles", mock.Anything, "id", "1.20.1", "fabric").Return([]catalog.File{}, nil)
				a.On("ListFiles", mock.Anything, "id", "1.20.1", "").Return(nil, errUpstream)
			},
		},
		{
			name: "unfiltered listing fails",
			setup: func(a *mockAdapter) {
				a.On("ListFiles", mock.Anything, "id", "1.20.1", "fabric").Return([]catalog.File{}, nil)
				a.On("ListFiles", mock.Anything, "id", "1.20.1", "").Return([]catalog.File{}, nil)
				a.On("ListFiles", mock.Anything, "id", "", "").Return(nil, errUpstream)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := modrinthMod("id", "lithium", "Lithium")
			adapter := newMockAdapter(catalog.SourceModrinth)
			adapter.On("Lookup", mock.Anything, "lithium").Return(mod, nil)
			tt.setup(adapter)

			out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
				Query: "lithium", GameVersion: "1.20.1", Loader: "fabric", AutoPick: true,
			})

			require.NoError(t, err)
			assert.Equal(t, StatusFound, out.Status)
			assert.Equal(t, mod, out.Mod)
			assert.Nil(t, out.File)
			adapter.AssertExpectations(t)
		})
	}
}

func TestResolver_AutoPickModes(t *testing.T) {
	t.Run("disabled returns mod only", func(t *testing.T) {
		mod := modrinthMod("id", "iris", "Iris")
		adapter := newMockAdapter(catalog.SourceModrinth)
		adapter.On("Lookup", mock.Anything, "iris").Return(mod, nil)

		out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
			Query: "iris", GameVersion: "1.20.1", Loader: "fabric",
		})

		require.NoError(t, err)
		assert.Equal(t, StatusFound, out.Status)
		assert.Nil(t, out.File)
		adapter.AssertNotCalled(t, "ListFiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no version picks latest for loader", func(t *testing.T) {
		mod := modrinthMod("id", "iris", "Iris")
		adapter := newMockAdapter(catalog.SourceModrinth)
		adapter.On("Lookup", mock.Anything, "iris").Return(mod, nil)
		adapter.On("ListFiles", mock.Anything, "id", "", "fabric").Return([]catalog.File{
			file("newest-beta", catalog.ChannelBeta, []string{"1.21"}, "fabric"),
			file("newest-release", catalog.ChannelRelease, []string{"1.21"}, "fabric"),
		}, nil)

		out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
			Query: "iris", Loader: "fabric", AutoPick: true,
		})

		require.NoError(t, err)
		assert.Equal(t, StatusFound, out.Status)
		require.NotNil(t, out.File)
		assert.Equal(t, "newest-release", out.File.ID)
	})

	t.Run("no version and listing fails", func(t *testing.T) {
		mod := modrinthMod("id", "iris", "Iris")
		adapter := newMockAdapter(catalog.SourceModrinth)
		adapter.On("Lookup", mock.Anything, "iris").Return(mod, nil)
		adapter.On("ListFiles", mock.Anything, "id", "", "").Return(nil, errUpstream)

		out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
			Query: "iris", AutoPick: true,
		})

		require.NoError(t, err)
		assert.Equal(t, StatusFound, out.Status)
		assert.Nil(t, out.File)
	})
}

func TestResolver_SearchPrefersExactMatch(t *testing.T) {
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "Sodium").Return(noMod, nil)
	adapter.On("Search", mock.Anything, catalog.SearchQuery{Query: "Sodium", GameVersion: "1.20.1", Loader: "fabric"}).
		Return(catalog.SearchPage{Mods: []catalog.Mod{
			*modrinthMod("extra", "sodium-extra", "Sodium Extra"),
			*modrinthMod("AANobbMI", "sodium", "Sodium"),
		}, Total: 2}, nil)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
		Query: "Sodium", GameVersion: "1.20.1", Loader: "fabric",
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "AANobbMI", out.Mod.ID)
}

func TestResolver_SearchTakesTopHitWithoutExactMatch(t *testing.T) {
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "shaders").Return(noMod, nil)
	adapter.On("Search", mock.Anything, catalog.SearchQuery{Query: "shaders"}).
		Return(catalog.SearchPage{Mods: []catalog.Mod{
			*modrinthMod("iris", "iris", "Iris Shaders"),
			*modrinthMod("oculus", "oculus", "Oculus"),
		}}, nil)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{Query: "shaders"})

	require.NoError(t, err)
	assert.Equal(t, "iris", out.Mod.ID)
}

func TestResolver_SearchMatchesHyphenatedVariation(t *testing.T) {
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "Mod Menu").Return(noMod, nil)
	adapter.On("Search", mock.Anything, catalog.SearchQuery{Query: "Mod Menu"}).
		Return(catalog.SearchPage{Mods: []catalog.Mod{
			*modrinthMod("other", "modmenu-addon", "Addon"),
			*modrinthMod("mOsU6Ea", "mod-menu", "ModMenu"),
		}}, nil)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{Query: "Mod Menu"})

	require.NoError(t, err)
	assert.Equal(t, "mOsU6Ea", out.Mod.ID)
}

func TestResolver_VariationErrorsAreSkipped(t *testing.T) {
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "fabric-api").Return(nil, errUpstream)
	adapter.On("Search", mock.Anything, catalog.SearchQuery{Query: "fabric-api"}).
		Return(catalog.SearchPage{}, errUpstream)
	adapter.On("Search", mock.Anything, catalog.SearchQuery{Query: "fabric api"}).
		Return(catalog.SearchPage{Mods: []catalog.Mod{*modrinthMod("P7dR8mSH", "fabric-api", "Fabric API")}}, nil)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{Query: "fabric-api"})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "P7dR8mSH", out.Mod.ID)
	adapter.AssertExpectations(t)
}

func TestResolver_NotFound(t *testing.T) {
	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "nonexistent-xyz").Return(noMod, nil)
	adapter.On("Search", mock.Anything, mock.Anything).Return(emptyPage(), nil)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{
		Query: "nonexistent-xyz", GameVersion: "1.20.1",
	})

	require.NoError(t, err)
	assert.Nil(t, out)
	// one search per variation: "nonexistent-xyz", "nonexistent xyz"
	adapter.AssertNumberOfCalls(t, "Search", 2)
}

func TestResolver_EmptyQuery(t *testing.T) {
	adapter := newMockAdapter(catalog.SourceModrinth)

	out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{Query: "  "})

	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestResolver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	adapter := newMockAdapter(catalog.SourceModrinth)
	adapter.On("Lookup", mock.Anything, "sodium").Return(noMod, nil).Run(func(mock.Arguments) { cancel() })

	out, err := NewResolver(adapter, Options{}).Resolve(ctx, Request{Query: "sodium"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
	adapter.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestResolver_SlugSearcher(t *testing.T) {
	jei := curseforgeMod(238222, "jei", "Just Enough Items (JEI)")

	t.Run("probes slug variants before searching", func(t *testing.T) {
		adapter := newMockSlugAdapter()
		adapter.On("SearchBySlug", mock.Anything, "Just Enough_Items").Return(noMod, nil)
		adapter.On("SearchBySlug", mock.Anything, "Just-Enough_Items").Return(nil, errUpstream)
		adapter.On("SearchBySlug", mock.Anything, "Just Enough-Items").Return(jei, nil)

		out, err := NewResolver(adapter, Options{RelaxFilters: true}).Resolve(context.Background(), Request{
			Query: "Just Enough_Items",
		})

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, jei, out.Mod)
		adapter.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
		adapter.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("relaxes filters when the filtered search is empty", func(t *testing.T) {
		adapter := newMockSlugAdapter()
		adapter.On("SearchBySlug", mock.Anything, "jei").Return(noMod, nil)
		adapter.On("Search", mock.Anything, catalog.SearchQuery{Query: "jei", GameVersion: "1.20.1", Loader: "forge"}).
			Return(emptyPage(), nil)
		adapter.On("Search", mock.Anything, catalog.SearchQuery{Query: "jei"}).
			Return(catalog.SearchPage{Mods: []catalog.Mod{*jei}}, nil)
		adapter.On("ListFiles", mock.Anything, "238222", "1.20.1", "forge").Return([]catalog.File{
			file("jei-forge", catalog.ChannelRelease, []string{"1.20.1"}, "forge"),
		}, nil)

		out, err := NewResolver(adapter, Options{RelaxFilters: true}).Resolve(context.Background(), Request{
			Query: "jei", GameVersion: "1.20.1", Loader: "forge", AutoPick: true,
		})

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.True(t, out.HasFile())
		assert.Equal(t, "jei-forge", out.File.ID)
		adapter.AssertExpectations(t)
	})
}

func TestResolver_SlugSearcherNumericID(t *testing.T) {
	jei := curseforgeMod(238222, "jei", "Just Enough Items (JEI)")

	t.Run("looks numeric ids up directly", func(t *testing.T) {
		adapter := newMockSlugAdapter()
		adapter.On("Lookup", mock.Anything, "238222").Return(jei, nil)
		adapter.On("ListFiles", mock.Anything, "238222", "1.20.1", "forge").Return([]catalog.File{
			file("jei-forge", catalog.ChannelRelease, []string{"1.20.1"}, "Forge"),
		}, nil)

		out, err := NewResolver(adapter, Options{RelaxFilters: true}).Resolve(context.Background(), Request{
			Query: "238222", GameVersion: "1.20.1", Loader: "forge", AutoPick: true,
		})

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, jei, out.Mod)
		assert.Equal(t, "jei-forge", out.File.ID)
		adapter.AssertExpectations(t)
		adapter.AssertNotCalled(t, "SearchBySlug", mock.Anything, mock.Anything)
		adapter.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("falls back to slug probes when the id misses", func(t *testing.T) {
		adapter := newMockSlugAdapter()
		adapter.On("Lookup", mock.Anything, "2048").Return(nil, errUpstream)
		adapter.On("SearchBySlug", mock.Anything, "2048").Return(jei, nil)

		out, err := NewResolver(adapter, Options{}).Resolve(context.Background(), Request{Query: "2048"})

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, jei, out.Mod)
		adapter.AssertExpectations(t)
	})
}

func TestIsNumericID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"238222", true},
		{"1", true},
		{"", false},
		{"0", false},
		{"012", false},
		{"jei", false},
		{"12a", false},
		{"-5", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, isNumericID(tt.in))
		})
	}
}

func TestSlugVariants(t *testing.T) {
	assert.Equal(t, []string{"sodium"}, slugVariants("sodium"))
	assert.Equal(t, []string{"fabric api", "fabric-api"}, slugVariants("fabric api"))
	assert.Equal(t, []string{"mod_menu", "mod-menu"}, slugVariants("mod_menu"))
	assert.Equal(t, []string{"a b_c", "a-b_c", "a b-c"}, slugVariants("a b_c"))
}
