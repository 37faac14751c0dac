package cache

import (
	"sync"
	"time"
)

// KV is the storage used by the typed caches below. Both Cache and
// ShardedCache implement it; the backing is picked from config.
type KV interface {
	Put(key string, v any)
	Get(key string) (any, bool)
	Delete(key string)
	Snapshot() map[string]any
}

// Cache is a single-lock map whose entries optionally expire ttl after
// their last Put. Expired entries are dropped lazily on Get and by a
// janitor goroutine.
type Cache struct {
	mu   sync.RWMutex
	data map[string]expiring

	ttl     time.Duration
	janitor bool
	ticker  *time.Ticker
	stop    chan struct{}
	now     func() time.Time
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option { return func(c *Cache) { c.ttl = ttl } }
func WithNoJanitor() Option            { return func(c *Cache) { c.janitor = false } }
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data:    make(map[string]expiring),
		janitor: true,
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	if c.ttl > 0 && c.janitor {
		c.ticker = time.NewTicker(c.ttl / 2)
		go func() {
			for {
				select {
				case <-c.ticker.C:
					c.purgeExpired()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *Cache) Close() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	close(c.stop)
}

type expiring struct {
	V any
	E time.Time
}

func (e expiring) expired(now time.Time) bool {
	return !e.E.IsZero() && now.After(e.E)
}

func (c *Cache) Put(key string, v any) {
	e := expiring{V: v}
	if c.ttl > 0 {
		e.E = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		if cur, ok := c.data[key]; ok && cur.E == e.E {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.V, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *Cache) purgeExpired() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
		}
	}
	c.mu.Unlock()
}

func (c *Cache) Snapshot() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]any, len(c.data))
	now := c.now()
	for k, e := range c.data {
		if e.expired(now) {
			continue
		}
		out[k] = e.V
	}
	return out
}
