package texture

import (
	"image"
	"sync"

	"robot-rig/internal/log"
)

// Resolver resolves a texture path to a decoded NRGBA image.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached as nil
// and logged once.
type Cache struct {
	mu     sync.RWMutex
	items  map[string]*cacheEntry
	logger log.Logger
}

type cacheEntry struct {
	img    *image.NRGBA
	loaded bool // true if we've attempted to load (img may still be nil)
}

// NewCache creates an empty texture cache. logger may be nil.
func NewCache(logger log.Logger) *Cache {
	if logger == nil {
		logger = log.Discard()
	}
	return &Cache{
		items:  make(map[string]*cacheEntry),
		logger: logger,
	}
}

// Resolve loads and caches a texture by path. Returns nil if it cannot be loaded.
func (c *Cache) Resolve(path string) *image.NRGBA {
	if path == "" {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img
	}
	if err != nil {
		c.logger.Warnf("%v (drawing flat colour)", err)
	}
	c.items[path] = &cacheEntry{img: img, loaded: true}
	return img
}

// Len returns the number of cached paths, failed loads included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
