package utils

import (
	"os"
	"sync"
	"time"
)

// cacheItem carries the file metadata used for invalidation.
type cacheItem[T any] struct {
	value   T
	modTime time.Time
	size    int64
}

// Cache is a small concurrency-safe cache with optional file-based
// invalidation: entries stored with file metadata are dropped when the
// backing file changes.
type Cache[K comparable, V any] struct {
	items map[K]*cacheItem[V]
	mutex sync.RWMutex
}

// NewCache creates an empty cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]*cacheItem[V]),
	}
}

// Get retrieves an item without validation.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if item, exists := c.items[key]; exists {
		return item.value, true
	}

	var zero V
	return zero, false
}

// GetWithFileValidation retrieves an item only if the backing file is
// unchanged since the entry was stored. A modified or missing file evicts
// the entry.
func (c *Cache[K, V]) GetWithFileValidation(key K, filePath string) (V, bool) {
	c.mutex.RLock()
	item, exists := c.items[key]
	c.mutex.RUnlock()

	if !exists {
		var zero V
		return zero, false
	}

	if stat, err := os.Stat(filePath); err == nil {
		if stat.ModTime().Equal(item.modTime) && stat.Size() == item.size {
			return item.value, true
		}
	}

	c.mutex.Lock()
	delete(c.items, key)
	c.mutex.Unlock()

	var zero V
	return zero, false
}

// Set stores an item without file metadata.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = &cacheItem[V]{value: value}
}

// SetWithFileInfo stores an item together with the backing file's metadata.
func (c *Cache[K, V]) SetWithFileInfo(key K, value V, filePath string) error {
	stat, err := os.Stat(filePath)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = &cacheItem[V]{
		value:   value,
		modTime: stat.ModTime(),
		size:    stat.Size(),
	}

	return nil
}

// Delete removes an item.
func (c *Cache[K, V]) Delete(key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}

// Clear removes all items.
func (c *Cache[K, V]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[K]*cacheItem[V])
}

// Size returns the number of cached items.
func (c *Cache[K, V]) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.items)
}
