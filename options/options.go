// Package options provides functional options for configuring Chunker instances.
package options

import (
	"errors"

	"go.uber.org/zap"

	"github.com/botirk38/semanticchunker/embedcache"
	"github.com/botirk38/semanticchunker/providers"
	"github.com/botirk38/semanticchunker/providers/gemini"
	"github.com/botirk38/semanticchunker/providers/openai"
	"github.com/botirk38/semanticchunker/types"
)

// Option represents a configuration option for a Chunker.
type Option func(*Config) error

// Config holds the configuration for building a Chunker.
type Config struct {
	Provider  types.EmbeddingProvider
	Segmenter types.SentenceSegmenter

	// TokenLimit is the downstream consumer's input limit in tokens.
	// It drives the maximum chunk size in characters.
	TokenLimit int

	// BufferSize is the context window half-width in sentences.
	BufferSize int

	// ThresholdType selects the breakpoint threshold strategy.
	ThresholdType types.ThresholdType

	// ThresholdAmount is the strategy parameter. Nil uses the
	// strategy's default (95 / 3 / 1.5 / 95).
	ThresholdAmount *float64

	// TargetChunkCount, when > 0, requests an exact chunk count and
	// overrides strategy-based thresholding entirely.
	TargetChunkCount int

	// MinChunkChars is the minimum text length for a chunk to be kept.
	MinChunkChars int

	// MaxOverrunChars is how far past the size limit to search for a
	// newline when splitting oversized chunk text. 0 disables the search.
	MaxOverrunChars int

	// MaxConcurrency bounds concurrent embedding requests. 0 means unbounded.
	MaxConcurrency int

	Logger *zap.Logger
}

// NewConfig creates a new configuration with default values.
func NewConfig() *Config {
	return &Config{
		BufferSize:      1,
		ThresholdType:   types.ThresholdPercentile,
		MaxOverrunChars: 200,
		Logger:          zap.NewNop(),
	}
}

// Apply applies all the given options to the config.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Provider == nil {
		return errors.New("embedding provider is required - use WithOpenAIProvider, WithProvider, etc.")
	}
	if c.Segmenter == nil {
		return errors.New("sentence segmenter is required")
	}
	if c.TokenLimit <= 0 {
		return errors.New("token limit must be positive - use WithTokenLimit")
	}
	if !c.ThresholdType.Valid() {
		return types.ErrUnknownThresholdType
	}
	return nil
}

// WithProvider allows using a pre-configured embedding provider.
func WithProvider(provider types.EmbeddingProvider) Option {
	return func(cfg *Config) error {
		if provider == nil {
			return errors.New("provider cannot be nil")
		}
		cfg.Provider = provider
		return nil
	}
}

// WithOpenAIProvider sets up an OpenAI embedding provider.
func WithOpenAIProvider(apiKey string, model ...string) Option {
	return func(cfg *Config) error {
		config := openai.Config{APIKey: apiKey}
		if len(model) > 0 {
			config.Model = model[0]
		}
		provider, err := openai.NewProvider(config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithGeminiProvider sets up a Gemini embedding provider.
func WithGeminiProvider(apiKey string, model ...string) Option {
	return func(cfg *Config) error {
		config := gemini.Config{APIKey: apiKey}
		if len(model) > 0 {
			config.Model = model[0]
		}
		provider, err := gemini.NewProvider(config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithEmbeddingCache wraps the configured provider with an embedding
// cache, so repeated texts are embedded only once. Apply after the
// provider option.
func WithEmbeddingCache(cache embedcache.Cache) Option {
	return func(cfg *Config) error {
		if cache == nil {
			return errors.New("cache cannot be nil")
		}
		if cfg.Provider == nil {
			return errors.New("embedding cache requires a provider - apply a provider option first")
		}
		cfg.Provider = providers.NewCachedProvider(cfg.Provider, cache)
		return nil
	}
}

// WithSegmenter allows using a custom sentence segmenter.
func WithSegmenter(segmenter types.SentenceSegmenter) Option {
	return func(cfg *Config) error {
		if segmenter == nil {
			return errors.New("segmenter cannot be nil")
		}
		cfg.Segmenter = segmenter
		return nil
	}
}

// WithTokenLimit sets the downstream token limit that bounds chunk size.
func WithTokenLimit(limit int) Option {
	return func(cfg *Config) error {
		if limit <= 0 {
			return errors.New("token limit must be positive")
		}
		cfg.TokenLimit = limit
		return nil
	}
}

// WithBufferSize sets the context window half-width in sentences.
// Negative values behave as zero.
func WithBufferSize(size int) Option {
	return func(cfg *Config) error {
		cfg.BufferSize = size
		return nil
	}
}

// WithThresholdType selects the breakpoint threshold strategy.
func WithThresholdType(t types.ThresholdType) Option {
	return func(cfg *Config) error {
		if !t.Valid() {
			return types.ErrUnknownThresholdType
		}
		cfg.ThresholdType = t
		return nil
	}
}

// WithThresholdAmount overrides the strategy's default parameter.
func WithThresholdAmount(amount float64) Option {
	return func(cfg *Config) error {
		cfg.ThresholdAmount = &amount
		return nil
	}
}

// WithTargetChunkCount requests an exact number of output chunks,
// overriding strategy-based thresholding. Counts below 1 behave as 1;
// counts above one-chunk-per-sentence behave as one chunk per sentence.
func WithTargetChunkCount(count int) Option {
	return func(cfg *Config) error {
		if count < 1 {
			count = 1
		}
		cfg.TargetChunkCount = count
		return nil
	}
}

// WithMinChunkChars discards assembled chunks shorter than n characters.
func WithMinChunkChars(n int) Option {
	return func(cfg *Config) error {
		if n < 0 {
			n = 0
		}
		cfg.MinChunkChars = n
		return nil
	}
}

// WithMaxOverrunChars sets the newline search window for size-splitting.
// 0 disables boundary search and always hard-cuts.
func WithMaxOverrunChars(n int) Option {
	return func(cfg *Config) error {
		if n < 0 {
			return errors.New("max overrun chars cannot be negative")
		}
		cfg.MaxOverrunChars = n
		return nil
	}
}

// WithMaxConcurrency bounds the number of concurrent embedding requests.
func WithMaxConcurrency(n int) Option {
	return func(cfg *Config) error {
		if n < 0 {
			return errors.New("max concurrency cannot be negative")
		}
		cfg.MaxConcurrency = n
		return nil
	}
}

// WithLogger sets the logger used for debug output during chunking.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.Logger = logger
		return nil
	}
}
