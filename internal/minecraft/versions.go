// Package minecraft lists Minecraft game versions from Mojang's version
// manifest, the choices offered for a resolution target.
package minecraft

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultManifestURL is the Mojang version manifest endpoint.
	DefaultManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string sent with API requests.
	UserAgent = "go-modlist/dev (https://github.com/steviee/go-modlist)"
)

// Version types accepted by FilterVersions.
const (
	TypeRelease  = "release"
	TypeSnapshot = "snapshot"
	TypeAll      = "all"
)

// KnownReleases is served when the manifest cannot be fetched.
var KnownReleases = []string{
	"1.21.11", "1.21.5", "1.21.4", "1.21.3", "1.21.2", "1.21.1", "1.21",
	"1.20.6", "1.20.4", "1.20.3", "1.20.2", "1.20.1", "1.20",
	"1.19.4", "1.19.3", "1.19.2", "1.19.1", "1.19",
	"1.18.2", "1.18.1", "1.18",
	"1.17.1", "1.17",
	"1.16.5", "1.16.4", "1.16.3", "1.16.2", "1.16.1",
	"1.15.2", "1.14.4", "1.12.2", "1.12",
	"1.10.2", "1.9.4", "1.8.9", "1.7.10",
}

// VersionManifest represents the Mojang version manifest response.
type VersionManifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []VersionInfo `json:"versions"`
}

// VersionInfo represents a single Minecraft version entry.
type VersionInfo struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // "release", "snapshot", "old_beta", ...
	ReleaseTime string `json:"releaseTime,omitempty"`
}

// Client fetches and caches the version manifest.
type Client struct {
	manifestURL string
	httpClient  *http.Client
	userAgent   string
	cache       *manifestCache
}

// Config holds client configuration.
type Config struct {
	ManifestURL string
	Timeout     time.Duration
	UserAgent   string
	CacheTTL    time.Duration
}

// NewClient creates a new version manifest client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	manifestURL := config.ManifestURL
	if manifestURL == "" {
		manifestURL = DefaultManifestURL
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = UserAgent
	}

	slog.Debug("creating Minecraft version client",
		"manifest_url", manifestURL,
		"timeout", timeout)

	return &Client{
		manifestURL: manifestURL,
		httpClient:  &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		cache:       newManifestCache(config.CacheTTL),
	}
}

// GetVersionManifest returns the manifest, from cache while it is fresh.
func (c *Client) GetVersionManifest(ctx context.Context) (*VersionManifest, error) {
	if manifest := c.cache.get(); manifest != nil {
		slog.Debug("version manifest cache hit")
		return manifest, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("fetching Minecraft version manifest",
		"url", c.manifestURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var manifest VersionManifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	slog.Debug("fetched version manifest",
		"total_versions", len(manifest.Versions),
		"latest_release", manifest.Latest.Release,
		"latest_snapshot", manifest.Latest.Snapshot)

	c.cache.set(&manifest)
	return &manifest, nil
}

// GameVersions returns versions of versionType, newest first, capped at limit.
// If the manifest is unreachable, release listings fall back to KnownReleases;
// other types return the error.
func (c *Client) GameVersions(ctx context.Context, versionType string, limit int) ([]VersionInfo, error) {
	if err := ValidateType(versionType); err != nil {
		return nil, err
	}

	manifest, err := c.GetVersionManifest(ctx)
	if err != nil {
		if versionType != TypeRelease || ctx.Err() != nil {
			return nil, err
		}
		slog.Warn("version manifest unavailable, using built-in release list", "error", err)
		return FilterVersions(knownReleaseInfos(), TypeRelease, limit), nil
	}

	return FilterVersions(manifest.Versions, versionType, limit), nil
}

// ValidateType checks a version type filter.
func ValidateType(versionType string) error {
	switch versionType {
	case TypeRelease, TypeSnapshot, TypeAll:
		return nil
	default:
		return fmt.Errorf("invalid version type %q (must be release, snapshot or all)", versionType)
	}
}

// FilterVersions filters versions by type and applies a limit.
// Valid types are "release", "snapshot", or "all".
// If limit is 0 or negative, all matching versions are returned.
func FilterVersions(versions []VersionInfo, versionType string, limit int) []VersionInfo {
	filtered := make([]VersionInfo, 0)

	for _, v := range versions {
		if versionType != TypeAll && v.Type != versionType {
			continue
		}

		filtered = append(filtered, v)

		if limit > 0 && len(filtered) >= limit {
			break
		}
	}

	return filtered
}

func knownReleaseInfos() []VersionInfo {
	infos := make([]VersionInfo, len(KnownReleases))
	for i, id := range KnownReleases {
		infos[i] = VersionInfo{ID: id, Type: TypeRelease}
	}
	return infos
}

// ClearCache forces the next call to refetch the manifest.
func (c *Client) ClearCache() {
	c.cache.clear()
}
