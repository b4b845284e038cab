// Package semanticchunker splits long natural-language text into ordered,
// semantically coherent chunks sized for a downstream model's input limit.
// Chunk boundaries are placed where the semantic distance between
// neighboring contextual sentence windows exceeds a configurable threshold.
package semanticchunker

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tiktoken-go/tokenizer"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/botirk38/semanticchunker/options"
	"github.com/botirk38/semanticchunker/segmenter"
	"github.com/botirk38/semanticchunker/similarity"
	"github.com/botirk38/semanticchunker/types"
)

const (
	// charsPerToken is the heuristic character-per-token ratio used to
	// derive the chunk size limit from the token limit.
	charsPerToken = 4

	// sizeMargin keeps chunk text safely below the token limit.
	sizeMargin = 0.9
)

// Chunker turns raw text into semantically coherent chunks.
// Configuration is immutable for the lifetime of the instance, and a
// Chunker is safe for concurrent use.
type Chunker struct {
	provider  types.EmbeddingProvider
	segmenter types.SentenceSegmenter
	encoding  tokenizer.Codec
	logger    *zap.Logger

	maxChars         int
	bufferSize       int
	thresholdType    types.ThresholdType
	thresholdAmount  float64
	targetChunkCount int
	minChunkChars    int
	maxOverrunChars  int
	maxConcurrency   int
}

// New creates a Chunker with functional options. An embedding provider and
// a token limit are required; the segmenter defaults to English sentence
// segmentation.
func New(opts ...options.Option) (*Chunker, error) {
	cfg := options.NewConfig()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if cfg.Segmenter == nil {
		seg, err := segmenter.NewEnglish()
		if err != nil {
			return nil, fmt.Errorf("default segmenter: %w", err)
		}
		cfg.Segmenter = seg
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	amount, err := cfg.ThresholdType.DefaultAmount()
	if err != nil {
		return nil, err
	}
	if cfg.ThresholdAmount != nil {
		amount = *cfg.ThresholdAmount
	}

	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	return &Chunker{
		provider:         cfg.Provider,
		segmenter:        cfg.Segmenter,
		encoding:         enc,
		logger:           cfg.Logger,
		maxChars:         int(float64(cfg.TokenLimit) * charsPerToken * sizeMargin),
		bufferSize:       cfg.BufferSize,
		thresholdType:    cfg.ThresholdType,
		thresholdAmount:  amount,
		targetChunkCount: cfg.TargetChunkCount,
		minChunkChars:    cfg.MinChunkChars,
		maxOverrunChars:  cfg.MaxOverrunChars,
		maxConcurrency:   cfg.MaxConcurrency,
	}, nil
}

// CreateChunks splits text into chunks, each with a unique identifier and
// an embedding of its final text. Chunks are returned in document order.
// Embedding requests are issued concurrently; a failure or ctx cancellation
// aborts the whole operation without partial results.
func (c *Chunker) CreateChunks(ctx context.Context, text string) ([]types.Chunk, error) {
	sentences, err := c.segmenter.Segment(text)
	if err != nil {
		return nil, fmt.Errorf("segment text: %w", err)
	}

	// Nothing to compare against: wrap the original input verbatim.
	if len(sentences) <= 1 {
		chunk, err := c.newChunk(ctx, text)
		if err != nil {
			return nil, err
		}
		return []types.Chunk{chunk}, nil
	}

	contextual := buildContextualSentences(sentences, c.bufferSize)

	embeddings, err := c.embedAll(ctx, contextual)
	if err != nil {
		return nil, err
	}

	distances, err := similarity.NeighborDistances(embeddings)
	if err != nil {
		return nil, err
	}

	threshold, err := c.breakpointThreshold(distances)
	if err != nil {
		return nil, err
	}

	breakpoints := breakpointsAbove(distances, threshold)
	c.logger.Debug("chunk boundaries selected",
		zap.Int("sentences", len(sentences)),
		zap.Float64("threshold", threshold),
		zap.Int("breakpoints", len(breakpoints)))

	texts := c.assembleChunkTexts(sentences, breakpoints)

	chunks := make([]types.Chunk, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	if c.maxConcurrency > 0 {
		g.SetLimit(c.maxConcurrency)
	}
	for i, chunkText := range texts {
		g.Go(func() error {
			chunk, err := c.newChunk(gctx, chunkText)
			if err != nil {
				return err
			}
			chunks[i] = chunk
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chunks, nil
}

// CountTokens counts the number of tokens in text using the cl100k_base
// encoding, for checking chunk sizes against real model limits.
func (c *Chunker) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	ids, _, err := c.encoding.Encode(text)
	if err != nil {
		return 0, fmt.Errorf("tokenization failed: %w", err)
	}
	return len(ids), nil
}

// Close frees resources held by the embedding provider.
func (c *Chunker) Close() {
	c.provider.Close()
}

// embedAll embeds every text concurrently and returns the vectors in the
// original index order. Each slot is written exactly once.
func (c *Chunker) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	if c.maxConcurrency > 0 {
		g.SetLimit(c.maxConcurrency)
	}
	for i, text := range texts {
		g.Go(func() error {
			embedding, err := c.provider.EmbedText(gctx, text)
			if err != nil {
				return fmt.Errorf("embed contextual sentence %d: %w", i, err)
			}
			embeddings[i] = embedding
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return embeddings, nil
}

// assembleChunkTexts walks sentences in order, closing the pending group
// at each breakpoint and at the end of input. Groups shorter than the
// minimum chunk length are discarded; oversized group text is subdivided
// by the size-constrained splitter.
func (c *Chunker) assembleChunkTexts(sentences []string, breakpoints map[int]bool) []string {
	var texts []string
	var group []string
	for i, sentence := range sentences {
		group = append(group, sentence)
		if !breakpoints[i] && i != len(sentences)-1 {
			continue
		}

		text := strings.TrimSpace(strings.Join(group, " "))
		group = group[:0]
		if utf8.RuneCountInString(text) < c.minChunkChars {
			continue
		}
		for part := range splitChunkText(text, c.maxChars, c.maxOverrunChars) {
			texts = append(texts, part)
		}
	}
	return texts
}

// newChunk embeds text and wraps it with a fresh identifier.
func (c *Chunker) newChunk(ctx context.Context, text string) (types.Chunk, error) {
	embedding, err := c.provider.EmbedText(ctx, text)
	if err != nil {
		return types.Chunk{}, fmt.Errorf("embed chunk: %w", err)
	}
	return types.Chunk{
		ID:        uuid.NewString(),
		Text:      text,
		Embedding: embedding,
	}, nil
}
