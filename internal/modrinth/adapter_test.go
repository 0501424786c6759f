package modrinth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/go-modlist/internal/catalog"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAdapter(NewClient(&Config{BaseURL: server.URL}))
}

func TestAdapter_Source(t *testing.T) {
	assert.Equal(t, catalog.SourceModrinth, NewAdapter(NewClient(nil)).Source())
}

func TestAdapter_Search(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "sodium", r.URL.Query().Get("query"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "5", r.URL.Query().Get("offset"))
		assert.Equal(t,
			`[["project_type:mod"],["versions:1.20.1"],["categories:fabric"]]`,
			r.URL.Query().Get("facets"))

		_, _ = w.Write([]byte(`{
			"hits": [
				{"project_id":"AANobbMI","slug":"sodium","title":"Sodium","description":"fast",
				 "downloads":1000,"icon_url":"https://cdn/icon.png","author":"jellysquid3",
				 "categories":["optimization"]},
				{"project_id":"gvQqBUqZ","slug":"lithium","title":"Lithium"}
			],
			"total_hits": 2
		}`))
	})

	page, err := adapter.Search(context.Background(), catalog.SearchQuery{
		Query:       "sodium",
		GameVersion: "1.20.1",
		Loader:      "fabric",
		Offset:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Mods, 2)

	assert.Equal(t, catalog.Mod{
		ID:          "AANobbMI",
		Source:      catalog.SourceModrinth,
		Title:       "Sodium",
		Description: "fast",
		IconURL:     "https://cdn/icon.png",
		Downloads:   1000,
		Author:      "jellysquid3",
		Slug:        "sodium",
		Categories:  []string{"optimization"},
	}, page.Mods[0])

	assert.Equal(t, "Unknown", page.Mods[1].Author)
	assert.Equal(t, []string{}, page.Mods[1].Categories)
}

func TestAdapter_Search_UpstreamError(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := adapter.Search(context.Background(), catalog.SearchQuery{Query: "sodium"})
	require.Error(t, err)

	var ue *catalog.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, catalog.SourceModrinth, ue.Source)
	assert.Equal(t, http.StatusServiceUnavailable, ue.StatusCode)
}

func TestAdapter_Search_BlankQuery(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	page, err := adapter.Search(context.Background(), catalog.SearchQuery{Query: "   ", GameVersion: "1.20.1"})
	require.NoError(t, err)
	assert.Empty(t, page.Mods)
	assert.Zero(t, page.Total)
}

func TestAdapter_Lookup(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		status     int
		body       string
		wantMod    *catalog.Mod
		wantErr    bool
		wantStatus int
	}{
		{
			name:       "found by slug",
			identifier: "sodium",
			status:     http.StatusOK,
			body:       `{"id":"AANobbMI","slug":"sodium","title":"Sodium","team":"4reRqHDu","downloads":5}`,
			wantMod: &catalog.Mod{
				ID:         "AANobbMI",
				Source:     catalog.SourceModrinth,
				Title:      "Sodium",
				Downloads:  5,
				Author:     "4reRqHDu",
				Slug:       "sodium",
				Categories: []string{},
			},
		},
		{
			name:       "not found is absence",
			identifier: "does-not-exist",
			status:     http.StatusNotFound,
			body:       `{"error":"not_found"}`,
		},
		{
			name:       "server error is upstream error",
			identifier: "sodium",
			status:     http.StatusInternalServerError,
			body:       `{"error":"internal","description":"boom"}`,
			wantErr:    true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/project/"+tt.identifier, r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			mod, err := adapter.Lookup(context.Background(), tt.identifier)
			if tt.wantErr {
				require.Error(t, err)
				var ue *catalog.UpstreamError
				require.True(t, errors.As(err, &ue))
				assert.Equal(t, tt.wantStatus, ue.StatusCode)
				assert.Nil(t, mod)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMod, mod)
		})
	}
}

func TestAdapter_Lookup_EmptyIdentifier(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	mod, err := adapter.Lookup(context.Background(), " ")
	require.NoError(t, err)
	assert.Nil(t, mod)
}

func TestAdapter_ListFiles(t *testing.T) {
	tests := []struct {
		name        string
		gameVersion string
		loader      string
		wantQuery   map[string]string
	}{
		{
			name:        "both filters",
			gameVersion: "1.20.1",
			loader:      "Fabric",
			wantQuery:   map[string]string{"loaders": `["fabric"]`, "game_versions": `["1.20.1"]`},
		},
		{
			name:      "loader only",
			loader:    "quilt",
			wantQuery: map[string]string{"loaders": `["quilt"]`, "game_versions": ""},
		},
		{
			name:      "unfiltered",
			wantQuery: map[string]string{"loaders": "", "game_versions": ""},
		},
	}

	body := `[
		{"id":"v2","name":"Sodium 0.5.8","version_type":"beta","game_versions":["1.20.1"],"loaders":["fabric","quilt"],
		 "downloads":10,"date_published":"2024-03-01T00:00:00Z",
		 "files":[{"url":"https://cdn/extra.jar","filename":"extra.jar","size":1},
		          {"url":"https://cdn/sodium-0.5.8.jar","filename":"sodium-0.5.8.jar","primary":true,"size":2048}]},
		{"id":"v1","name":"Sodium 0.5.7","version_type":"release","game_versions":["1.20","1.20.1"],"loaders":["fabric"],
		 "files":[{"url":"https://cdn/sodium-0.5.7.jar","filename":"sodium-0.5.7.jar","size":1024}]},
		{"id":"v0","name":"No files","version_type":"alpha","game_versions":["1.19.4"],"loaders":["fabric"],"files":[]}
	]`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/project/AANobbMI/version", r.URL.Path)
				for k, v := range tt.wantQuery {
					assert.Equal(t, v, r.URL.Query().Get(k), k)
				}
				_, _ = w.Write([]byte(body))
			})

			files, err := adapter.ListFiles(context.Background(), "AANobbMI", tt.gameVersion, tt.loader)
			require.NoError(t, err)
			require.Len(t, files, 3)

			assert.Equal(t, catalog.File{
				ID:           "v2",
				Name:         "Sodium 0.5.8",
				Filename:     "sodium-0.5.8.jar",
				URL:          "https://cdn/sodium-0.5.8.jar",
				Size:         2048,
				GameVersions: []string{"1.20.1"},
				Loaders:      []string{"fabric", "quilt"},
				Downloads:    10,
				PublishedAt:  "2024-03-01T00:00:00Z",
				Channel:      catalog.ChannelBeta,
			}, files[0])

			assert.Equal(t, "sodium-0.5.7.jar", files[1].Filename)
			assert.Equal(t, catalog.ChannelRelease, files[1].Channel)

			assert.Empty(t, files[2].Filename)
			assert.Equal(t, catalog.ChannelAlpha, files[2].Channel)
		})
	}
}

func TestAdapter_ListFiles_CapsPageSize(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		records := make([]string, 0, 60)
		for i := 0; i < 60; i++ {
			records = append(records, fmt.Sprintf(`{"id":"v%d","version_type":"release","files":[]}`, i))
		}
		_, _ = w.Write([]byte("[" + strings.Join(records, ",") + "]"))
	})

	files, err := adapter.ListFiles(context.Background(), "AANobbMI", "", "")
	require.NoError(t, err)
	assert.Len(t, files, catalog.FilesPageSize)
	assert.Equal(t, "v0", files[0].ID)
}

func TestAdapter_ListFiles_Error(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := adapter.ListFiles(context.Background(), "gone", "1.20.1", "fabric")
	require.Error(t, err)
	assert.True(t, catalog.IsUpstream(err))
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestPrimaryFile(t *testing.T) {
	assert.Nil(t, PrimaryFile(nil))
	assert.Nil(t, PrimaryFile(&Version{}))

	v := &Version{Files: []File{{Filename: "a.jar"}, {Filename: "b.jar", Primary: true}}}
	assert.Equal(t, "b.jar", PrimaryFile(v).Filename)

	v = &Version{Files: []File{{Filename: "a.jar"}, {Filename: "b.jar"}}}
	assert.Equal(t, "a.jar", PrimaryFile(v).Filename)
}
