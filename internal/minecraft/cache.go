package minecraft

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched manifest is reused.
const DefaultCacheTTL = 1 * time.Hour

// manifestCache holds the last fetched manifest until it expires.
type manifestCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	manifest  *VersionManifest
	fetchedAt time.Time
	now       func() time.Time
}

func newManifestCache(ttl time.Duration) *manifestCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &manifestCache{ttl: ttl, now: time.Now}
}

// get returns the cached manifest, or nil when empty or expired.
func (c *manifestCache) get() *VersionManifest {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.manifest == nil || c.now().Sub(c.fetchedAt) > c.ttl {
		return nil
	}
	return c.manifest
}

func (c *manifestCache) set(m *VersionManifest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.manifest = m
	c.fetchedAt = c.now()
}

// clear drops the cached manifest.
func (c *manifestCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.manifest = nil
}
