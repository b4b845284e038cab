// Package providers exposes embedding provider constructors and the
// caching provider wrapper.
package providers

import (
	"github.com/botirk38/semanticchunker/providers/gemini"
	"github.com/botirk38/semanticchunker/providers/openai"
	"github.com/botirk38/semanticchunker/types"
)

// NewOpenAIProvider creates a new OpenAI embedding provider.
func NewOpenAIProvider(config openai.Config) (types.EmbeddingProvider, error) {
	return openai.NewProvider(config)
}

// NewGeminiProvider creates a new Gemini embedding provider.
func NewGeminiProvider(config gemini.Config) (types.EmbeddingProvider, error) {
	return gemini.NewProvider(config)
}
