package execution

import (
	"time"

	lru "github.com/hashicorp/golang-lru"

	"backoff_retrier/internal/domain"
)

// HeaderCache keeps recently served headers for ttl. Expired entries are
// dropped lazily on Get.
type HeaderCache struct {
	lruCache *lru.Cache
	ttl      time.Duration
	now      func() time.Time
}

type cacheEntry struct {
	header domain.BlockHeader
	ts     time.Time
}

// NewHeaderCache returns a cache holding at most maxEntries headers.
// maxEntries must be positive.
func NewHeaderCache(maxEntries int, ttl time.Duration) (*HeaderCache, error) {
	c, err := lru.New(maxEntries)
	if err != nil {
		return nil, err
	}
	return &HeaderCache{
		lruCache: c,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Get returns the header stored for number if it is younger than the ttl.
func (c *HeaderCache) Get(number uint64) (domain.BlockHeader, bool) {
	raw, ok := c.lruCache.Get(number)
	if !ok {
		return domain.BlockHeader{}, false
	}
	e := raw.(cacheEntry)
	if c.now().Sub(e.ts) > c.ttl {
		c.lruCache.Remove(number)
		return domain.BlockHeader{}, false
	}
	return e.header, true
}

// Add stores header, evicting the least recently used entry when full.
func (c *HeaderCache) Add(number uint64, header domain.BlockHeader) {
	c.lruCache.Add(number, cacheEntry{
		header: header,
		ts:     c.now(),
	})
}
