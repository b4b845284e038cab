// Package gemini provides an EmbeddingProvider backed by Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"os"

	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-embedding-001"
)

// Provider uses the Gemini API to embed text.
type Provider struct {
	client *genai.Client
	model  string
}

// Config provides configuration options for the Gemini embedding provider.
type Config struct {
	APIKey string
	Model  string
}

// NewProvider creates an embedding provider for Gemini.
// If the API key is empty, GEMINI_API_KEY is used.
func NewProvider(config Config) (*Provider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, errors.New("Gemini API key is required")
		}
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{client: client, model: model}, nil
}

// EmbedText sends the embedding request to Gemini.
func (p *Provider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := p.client.Models.EmbedContent(ctx, p.model, genai.Text(text), nil)
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return nil, errors.New("no embedding returned by Gemini")
	}
	return resp.Embeddings[0].Values, nil
}

func (p *Provider) Close() {}
