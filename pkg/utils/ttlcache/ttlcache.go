package ttlcache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is used when a non-positive TTL is given to New
const DefaultTTL = 5 * time.Minute

// entry holds a cached value with its expiration. Entries are never mutated,
// Set always replaces them.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is an in-memory key/value store where every entry expires after the
// TTL fixed at construction. Expired entries are never returned and are
// removed on the next access to their key.
//
// K is a named string type owned by the caller so that unrelated caches cannot
// collide on bare string keys.
type Cache[K ~string, V any] struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items map[K]entry[V]

	group singleflight.Group
}

type config struct {
	now func() time.Time
}

// Option configures a Cache
type Option func(*config)

// WithClock replaces time.Now as the source of the current time
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New creates a Cache whose entries live for ttl
func New[K ~string, V any](ttl time.Duration, opts ...Option) *Cache[K, V] {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache[K, V]{
		ttl:   ttl,
		now:   cfg.now,
		items: make(map[K]entry[V]),
	}
}

// TTL returns the lifetime of entries in this cache
func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}

// Get returns the value for key if present and not expired
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

func (c *Cache[K, V]) getLocked(key K) (V, bool) {
	var zero V
	e, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.items, key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate removes key from the cache
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// InvalidateAll removes every entry
func (c *Cache[K, V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]entry[V])
}

// Contains reports whether key holds a valid entry. It applies the same
// expiry rule as Get.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.getLocked(key)
	return ok
}

// Len returns the number of valid entries, purging expired ones
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.items {
		if !now.Before(e.expiresAt) {
			delete(c.items, k)
		}
	}
	return len(c.items)
}

// GetOrCompute returns the cached value for key, or runs factory to produce
// and store it. Concurrent callers missing the same key share one factory
// invocation. Factory errors are returned to every waiting caller and nothing
// is stored.
//
// The shared factory does not inherit the cancellation of the caller that
// started it. A caller whose ctx is done stops waiting and gets ctx.Err(),
// while the others keep waiting for the result.
func (c *Cache[K, V]) GetOrCompute(ctx context.Context, key K, factory func(ctx context.Context) (V, error)) (V, error) {
	var zero V
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(string(key), func() (any, error) {
		// A previous flight may have stored the value after our first check
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		v, err := factory(flightCtx)
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(V)
		return v, nil
	}
}
