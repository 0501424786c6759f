package catalogtest

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"testing"
)

const (
	// JEIID is the project id of the one mod the fake CurseForge catalog knows.
	JEIID = 238222

	// CurseForgeKey is the only API key the fake CurseForge catalog accepts.
	CurseForgeKey = "test-curseforge-key"
)

type cfFile struct {
	ID           int      `json:"id"`
	DisplayName  string   `json:"displayName"`
	FileName     string   `json:"fileName"`
	FileLength   int64    `json:"fileLength"`
	DownloadURL  string   `json:"downloadUrl"`
	GameVersions []string `json:"gameVersions"`
	ReleaseType  int      `json:"releaseType"`
	FileDate     string   `json:"fileDate"`
}

var jei = map[string]any{
	"id":            JEIID,
	"name":          "Just Enough Items (JEI)",
	"slug":          "jei",
	"summary":       "View items and recipes",
	"downloadCount": 300000000,
	"authors":       []map[string]string{{"name": "mezz"}},
	"categories":    []map[string]string{{"name": "API and Library", "slug": "library-api"}},
}

var jeiFiles = []cfFile{
	{
		ID: 4712866, DisplayName: "jei-1.20.1-forge-15.2.0.27", FileName: "jei-1.20.1-forge-15.2.0.27.jar",
		FileLength: 1200000, DownloadURL: "https://edge.forgecdn.net/files/4712/866/jei-1.20.1-forge-15.2.0.27.jar",
		GameVersions: []string{"1.20.1", "Forge"}, ReleaseType: 1, FileDate: "2023-09-01T00:00:00Z",
	},
	{
		ID: 4712870, DisplayName: "jei-1.20.1-fabric-15.2.0.27", FileName: "jei-1.20.1-fabric-15.2.0.27.jar",
		FileLength: 1100000, DownloadURL: "https://edge.forgecdn.net/files/4712/870/jei-1.20.1-fabric-15.2.0.27.jar",
		GameVersions: []string{"1.20.1", "Fabric"}, ReleaseType: 2, FileDate: "2023-09-01T00:00:00Z",
	},
}

var cfLoaderNames = map[string]string{"1": "Forge", "4": "Fabric", "5": "Quilt", "6": "NeoForge"}

// NewCurseForge starts a fake CurseForge API that knows only JEI. Requests
// without CurseForgeKey get a 403. Its URL is usable as a CurseForge base URL.
func NewCurseForge(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/mods/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		data := []map[string]any{}
		if strings.EqualFold(q.Get("slug"), "jei") ||
			(q.Get("slug") == "" && strings.Contains(strings.ToLower(q.Get("searchFilter")), "jei")) {
			data = append(data, jei)
		}
		writeJSON(w, map[string]any{
			"data":       data,
			"pagination": map[string]int{"index": 0, "pageSize": 20, "resultCount": len(data), "totalCount": len(data)},
		})
	})
	mux.HandleFunc("/mods/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/mods/")
		id, sub, _ := strings.Cut(rest, "/")
		if id != strconv.Itoa(JEIID) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch sub {
		case "":
			writeJSON(w, map[string]any{"data": jei})
		case "files":
			writeJSON(w, map[string]any{"data": filterCurseForgeFiles(r)})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	server := httptest.NewServer(requireKey(mux))
	t.Cleanup(server.Close)
	return server
}

func requireKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != CurseForgeKey {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func filterCurseForgeFiles(r *http.Request) []cfFile {
	gameVersion := r.URL.Query().Get("gameVersion")
	loader := cfLoaderNames[r.URL.Query().Get("modLoaderType")]

	out := []cfFile{}
	for _, f := range jeiFiles {
		if gameVersion != "" && !slices.Contains(f.GameVersions, gameVersion) {
			continue
		}
		if loader != "" && !slices.Contains(f.GameVersions, loader) {
			continue
		}
		out = append(out, f)
	}
	return out
}
