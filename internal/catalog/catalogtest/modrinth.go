// Package catalogtest serves small fake Modrinth and CurseForge catalogs and
// a version manifest for tests of the layers above the adapters.
package catalogtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
)

// SodiumID is the project id of the one mod the fake catalog knows.
const SodiumID = "AANobbMI"

type project struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Downloads   int      `json:"downloads"`
	Team        string   `json:"team"`
}

type versionFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Primary  bool   `json:"primary"`
	Size     int64  `json:"size"`
}

type version struct {
	ID            string        `json:"id"`
	ProjectID     string        `json:"project_id"`
	Name          string        `json:"name"`
	VersionNumber string        `json:"version_number"`
	VersionType   string        `json:"version_type"`
	GameVersions  []string      `json:"game_versions"`
	Loaders       []string      `json:"loaders"`
	Files         []versionFile `json:"files"`
}

var sodium = project{
	ID:          SodiumID,
	Slug:        "sodium",
	Title:       "Sodium",
	Description: "A modern rendering engine",
	Categories:  []string{"optimization"},
	Downloads:   1000000,
	Team:        "4reQOAKt",
}

var sodiumVersions = []version{
	{
		ID: "v1201", ProjectID: SodiumID, Name: "Sodium 0.5.8", VersionNumber: "mc1.20.1-0.5.8",
		VersionType: "release", GameVersions: []string{"1.20.1"}, Loaders: []string{"fabric", "quilt"},
		Files: []versionFile{{URL: "https://cdn.modrinth.com/sodium-fabric-0.5.8.jar", Filename: "sodium-fabric-0.5.8.jar", Primary: true, Size: 1048576}},
	},
	{
		ID: "v1192", ProjectID: SodiumID, Name: "Sodium 0.4.4", VersionNumber: "mc1.19.2-0.4.4",
		VersionType: "release", GameVersions: []string{"1.19.2", "1.19.1"}, Loaders: []string{"fabric"},
		Files: []versionFile{{URL: "https://cdn.modrinth.com/sodium-fabric-0.4.4.jar", Filename: "sodium-fabric-0.4.4.jar", Primary: true, Size: 900000}},
	},
}

// NewModrinth starts a fake Modrinth API that knows only Sodium. Its URL is
// usable as a Modrinth base URL. Every other project is a 404 and every
// other search is empty.
func NewModrinth(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		hits := []map[string]any{}
		if strings.Contains(strings.ToLower(r.URL.Query().Get("query")), "sodium") {
			hits = append(hits, map[string]any{
				"project_id": sodium.ID, "slug": sodium.Slug, "title": sodium.Title,
				"description": sodium.Description, "downloads": sodium.Downloads,
				"author": "jellysquid3", "categories": sodium.Categories,
			})
		}
		writeJSON(w, map[string]any{"hits": hits, "total_hits": len(hits)})
	})
	mux.HandleFunc("/project/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/project/")
		id, sub, _ := strings.Cut(rest, "/")
		if id != sodium.ID && id != sodium.Slug {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]string{"error": "not_found", "description": "project not found"})
			return
		}

		switch sub {
		case "":
			writeJSON(w, sodium)
		case "version":
			writeJSON(w, filterVersions(r))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func filterVersions(r *http.Request) []version {
	var loaders, gameVersions []string
	_ = json.Unmarshal([]byte(r.URL.Query().Get("loaders")), &loaders)
	_ = json.Unmarshal([]byte(r.URL.Query().Get("game_versions")), &gameVersions)

	out := []version{}
	for _, v := range sodiumVersions {
		if len(loaders) > 0 && !slices.ContainsFunc(loaders, func(l string) bool { return slices.Contains(v.Loaders, l) }) {
			continue
		}
		if len(gameVersions) > 0 && !slices.ContainsFunc(gameVersions, func(g string) bool { return slices.Contains(v.GameVersions, g) }) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
