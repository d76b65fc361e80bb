package content

import (
	"context"
	"sync"
	"time"
)

// ttlCache is a small in-process read-through cache keyed by request
// shape. Entries older than the TTL are refetched; when a refetch
// fails and a stale value exists, the stale value is served so a CMS
// blip never blanks the site.
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

// fetchResult tags how a lookup was satisfied, for metrics.
type fetchResult string

const (
	fetchHit   fetchResult = "hit"
	fetchMiss  fetchResult = "miss"
	fetchStale fetchResult = "stale"
)

// get returns the cached value for key, calling fetch on miss or
// expiry. Only values are cached; a fetch error with no prior value
// propagates to the caller.
func (c *ttlCache) get(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, fetchResult, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		value := entry.value
		c.mu.Unlock()
		return value, fetchHit, nil
	}
	c.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		if ok {
			return entry.value, fetchStale, nil
		}
		return nil, fetchMiss, err
	}

	c.mu.Lock()
	c.entries[key] = &cacheEntry{value: value, fetchedAt: c.now()}
	c.mu.Unlock()
	return value, fetchMiss, nil
}

// invalidate drops every cached entry.
func (c *ttlCache) invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}
