// Package embedcache provides pluggable caches for embedding vectors,
// keyed by the embedded text. Caching avoids re-embedding identical
// contextual sentences across chunking calls.
package embedcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Cache defines the interface for embedding cache backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the cached embedding for text, if present.
	Get(ctx context.Context, text string) ([]float32, bool, error)

	// Set stores the embedding for text.
	Set(ctx context.Context, text string, embedding []float32) error

	// Close closes the cache and releases resources.
	Close() error
}

// hashKey derives a fixed-size cache key from text.
func hashKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
