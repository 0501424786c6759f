package curseforge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&Config{BaseURL: server.URL, APIKey: "test-key"})
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		config          *Config
		expectedURL     string
		expectedTimeout time.Duration
		expectedKey     bool
	}{
		{
			name:            "nil config uses defaults",
			expectedURL:     DefaultBaseURL,
			expectedTimeout: DefaultTimeout,
		},
		{
			name:            "custom config",
			config:          &Config{BaseURL: "http://localhost:9000", APIKey: "k", Timeout: time.Second},
			expectedURL:     "http://localhost:9000",
			expectedTimeout: time.Second,
			expectedKey:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			require.NotNil(t, client)
			assert.Equal(t, tt.expectedURL, client.baseURL)
			assert.Equal(t, tt.expectedTimeout, client.httpClient.Timeout)
			assert.Equal(t, tt.expectedKey, client.HasAPIKey())
			assert.Equal(t, UserAgent, client.userAgent)
		})
	}
}

func TestClient_WithAPIKey(t *testing.T) {
	base := NewClient(&Config{APIKey: "configured"})
	scoped := base.WithAPIKey("per-call")

	assert.Equal(t, "configured", base.apiKey)
	assert.Equal(t, "per-call", scoped.apiKey)
	assert.Same(t, base.httpClient, scoped.httpClient)
	assert.Same(t, base.rateLimiter, scoped.rateLimiter)
}

func TestClient_getJSON_Headers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"data":{"id":1}}`))
	})

	var out struct {
		Data Mod `json:"data"`
	}
	require.NoError(t, client.getJSON(context.Background(), "/mods/1", nil, &out))
	assert.Equal(t, 1, out.Data.ID)
}

func TestClient_getJSON_MissingKey(t *testing.T) {
	client := NewClient(nil)

	var out any
	err := client.getJSON(context.Background(), "/mods/1", nil, &out)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		body          string
		expectedError error
		errorContains string
		wantStatus    int
	}{
		{name: "ok", statusCode: http.StatusOK},
		{name: "not found", statusCode: http.StatusNotFound, expectedError: ErrModNotFound, wantStatus: 404},
		{name: "rate limited", statusCode: http.StatusTooManyRequests, expectedError: ErrRateLimitExceeded, wantStatus: 429},
		{name: "forbidden", statusCode: http.StatusForbidden, errorContains: "invalid API key (status 403)", wantStatus: 403},
		{
			name:          "api error body",
			statusCode:    http.StatusBadRequest,
			body:          `{"errorMessage":"Invalid gameId"}`,
			errorContains: "Invalid gameId (status 400)",
			wantStatus:    400,
		},
		{
			name:          "unparseable body",
			statusCode:    http.StatusInternalServerError,
			body:          `nope`,
			errorContains: "500 Internal Server Error",
			wantStatus:    500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := http.Get(server.URL)
			require.NoError(t, err)
			defer func() {
				_ = resp.Body.Close()
			}()

			err = checkResponse(resp)
			if tt.expectedError == nil && tt.errorContains == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			}
			if tt.errorContains != "" {
				assert.Contains(t, err.Error(), tt.errorContains)
			}
			assert.Equal(t, tt.wantStatus, statusCode(err))
		})
	}
}

func TestLoaderTypeFor(t *testing.T) {
	tests := []struct {
		loader string
		want   ModLoaderType
		ok     bool
	}{
		{"forge", LoaderForge, true},
		{"fabric", LoaderFabric, true},
		{"quilt", LoaderQuilt, true},
		{"neoforge", LoaderNeoForge, true},
		{"rift", LoaderAny, false},
		{"", LoaderAny, false},
	}

	for _, tt := range tests {
		t.Run(tt.loader, func(t *testing.T) {
			got, ok := LoaderTypeFor(tt.loader)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
