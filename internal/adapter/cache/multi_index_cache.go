package cache

import (
	"sync"
	"time"

	"github.com/bornholm/lifemap/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cacheable values are reachable through every key they expose.
type Cacheable interface {
	CacheKeys() []string
}

type MultiIndexCache[V Cacheable] struct {
	name  string
	cache *expirable.LRU[string, V]
	mu    sync.RWMutex
}

func NewMultiIndexCache[V Cacheable](name string, size int, ttl time.Duration) *MultiIndexCache[V] {
	cache := expirable.NewLRU[string, V](size, nil, ttl)
	return &MultiIndexCache[V]{
		name:  name,
		cache: cache,
	}
}

func (c *MultiIndexCache[V]) Add(item V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range item.CacheKeys() {
		c.cache.Add(key, item)
	}
}

// AddUnless stores item except when one of its keys already holds a value
// for which skip returns true.
func (c *MultiIndexCache[V]) AddUnless(item V, skip func(current V, candidate V) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := item.CacheKeys()

	for _, key := range keys {
		current, exists := c.cache.Peek(key)
		if exists && skip(current, item) {
			return false
		}
	}

	for _, key := range keys {
		c.cache.Add(key, item)
	}

	return true
}

func (c *MultiIndexCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	value, exists := c.cache.Get(key)
	c.mu.RUnlock()

	result := metrics.ResultMiss
	if exists {
		result = metrics.ResultHit
	}

	metrics.StoreCache.WithLabelValues(c.name, result).Inc()

	return value, exists
}

// Remove evicts the value stored under key along with all its other keys.
func (c *MultiIndexCache[V]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	val, ok := c.cache.Peek(key)
	if !ok {
		return
	}

	for _, k := range val.CacheKeys() {
		c.cache.Remove(k)
	}
}

func (c *MultiIndexCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cache.Len()
}
