package embedcache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUCache is an in-memory embedding cache with LRU eviction.
type LRUCache struct {
	cache *lru.Cache[string, []float32]
}

// NewLRUCache creates an in-memory LRU embedding cache holding up to
// capacity entries.
func NewLRUCache(capacity int) (*LRUCache, error) {
	cache, err := lru.New[string, []float32](capacity)
	if err != nil {
		return nil, err
	}
	return &LRUCache{cache: cache}, nil
}

// Get retrieves the cached embedding for text, if present.
func (c *LRUCache) Get(_ context.Context, text string) ([]float32, bool, error) {
	embedding, ok := c.cache.Get(hashKey(text))
	return embedding, ok, nil
}

// Set stores the embedding for text, evicting the least recently used
// entry when the cache is full.
func (c *LRUCache) Set(_ context.Context, text string, embedding []float32) error {
	c.cache.Add(hashKey(text), embedding)
	return nil
}

// Close clears the cache.
func (c *LRUCache) Close() error {
	c.cache.Purge()
	return nil
}
