package githubapi

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/gitfolio/internal/metrics"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// Cache kinds, also used as metric labels
const (
	cacheKindUser      = "user"
	cacheKindRepos     = "repos"
	cacheKindLanguages = "languages"
	cacheKindCalendar  = "calendar"
)

type cachedEntry[V any] struct {
	Version  string
	Value    V
	CachedAt time.Time
}

// responseCache keeps decoded GitHub responses in an expiring LRU so repeated
// dashboard loads do not spend rate limit.
type responseCache[V any] struct {
	kind string
	lru  *expirable.LRU[string, *cachedEntry[V]]
}

func newResponseCache[V any](kind string, size int, ttl time.Duration) *responseCache[V] {
	return &responseCache[V]{
		kind: kind,
		lru:  expirable.NewLRU[string, *cachedEntry[V]](size, nil, ttl),
	}
}

// Get returns the cached value for key if present, unexpired and of the current version.
func (c *responseCache[V]) Get(key string) (V, bool) {
	var zero V
	entry, found := c.lru.Get(key)
	if !found {
		metrics.GitHubCacheLookups.WithLabelValues(c.kind, metrics.ResultMiss).Inc()
		return zero, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		metrics.GitHubCacheLookups.WithLabelValues(c.kind, metrics.ResultMiss).Inc()
		return zero, false
	}

	metrics.GitHubCacheLookups.WithLabelValues(c.kind, metrics.ResultHit).Inc()
	return entry.Value, true
}

// Set stores a value with the current schema version.
func (c *responseCache[V]) Set(key string, value V) {
	c.lru.Add(key, &cachedEntry[V]{
		Version:  CacheSchemaVersion,
		Value:    value,
		CachedAt: time.Now(),
	})
}

// Invalidate removes key from the cache.
func (c *responseCache[V]) Invalidate(key string) {
	c.lru.Remove(key)
}

// Clear removes all entries from the cache.
func (c *responseCache[V]) Clear() {
	c.lru.Purge()
}

// Len reports the number of live entries.
func (c *responseCache[V]) Len() int {
	return c.lru.Len()
}

// cacheKey joins parts into a key. Logins are case-insensitive on GitHub.
func cacheKey(parts ...string) string {
	return strings.ToLower(strings.Join(parts, ":"))
}
