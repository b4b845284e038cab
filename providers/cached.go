package providers

import (
	"context"

	"github.com/botirk38/semanticchunker/embedcache"
	"github.com/botirk38/semanticchunker/types"
)

// CachedProvider wraps an EmbeddingProvider with an embedding cache.
// Cache failures are not fatal: a failed read falls through to the
// wrapped provider and a failed write is dropped, so a degraded cache
// degrades to direct provider calls.
type CachedProvider struct {
	provider types.EmbeddingProvider
	cache    embedcache.Cache
}

// NewCachedProvider creates a provider that consults cache before
// delegating to provider.
func NewCachedProvider(provider types.EmbeddingProvider, cache embedcache.Cache) *CachedProvider {
	return &CachedProvider{provider: provider, cache: cache}
}

// EmbedText returns the cached embedding for text if present, otherwise
// embeds via the wrapped provider and stores the result.
func (p *CachedProvider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if embedding, found, err := p.cache.Get(ctx, text); err == nil && found {
		return embedding, nil
	}

	embedding, err := p.provider.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	_ = p.cache.Set(ctx, text, embedding)
	return embedding, nil
}

// Close closes the wrapped provider and the cache.
func (p *CachedProvider) Close() {
	p.provider.Close()
	_ = p.cache.Close()
}
