package catalogtest

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewVersionManifest starts a fake Mojang version manifest with two
// releases and one snapshot. Its URL is usable as a manifest URL.
func NewVersionManifest(t *testing.T) *httptest.Server {
	t.Helper()

	manifest := map[string]any{
		"latest": map[string]string{"release": "1.20.1", "snapshot": "23w31a"},
		"versions": []map[string]string{
			{"id": "23w31a", "type": "snapshot"},
			{"id": "1.20.1", "type": "release"},
			{"id": "1.19.2", "type": "release"},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, manifest)
	}))
	t.Cleanup(server.Close)
	return server
}
