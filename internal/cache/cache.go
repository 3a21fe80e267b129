package cache

import (
	"sync"
	"time"
)

type entry struct {
	body []byte
	exp  time.Time
}

// Cache holds rendered page bodies keyed by route name.
type Cache struct {
	mu    sync.RWMutex
	pages map[string]entry
	ttl   time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		pages: make(map[string]entry),
		ttl:   ttl,
	}
}

func (c *Cache) GetPage(name string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.pages[name]
	if !ok || time.Now().After(e.exp) {
		return nil, false
	}
	return e.body, true
}

func (c *Cache) SetPage(name string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[name] = entry{body: body, exp: time.Now().Add(c.ttl)}
}

func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.pages)
}
