package charts

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache keeps built figures forever. The dataset never changes once loaded,
// so there is nothing to invalidate.
type Cache struct {
	mu      sync.RWMutex
	figures map[string]Figure
	group   singleflight.Group
}

func NewCache() *Cache {
	return &Cache{figures: map[string]Figure{}}
}

// Get returns the figure stored under key, building it on first use.
// Concurrent callers asking for the same missing key wait for a single build.
// Failed builds are not stored.
func (c *Cache) Get(key string, build func() (Figure, error)) (Figure, error) {
	if f, ok := c.lookup(key); ok {
		return f, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if f, ok := c.lookup(key); ok {
			return f, nil
		}
		f, err := build()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.figures[key] = f
		c.mu.Unlock()
		return f, nil
	})
	if err != nil {
		return Figure{}, err
	}
	return v.(Figure), nil
}

func (c *Cache) lookup(key string) (Figure, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.figures[key]
	return f, ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.figures)
}
