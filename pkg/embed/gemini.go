package embed

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/contextpack/contextpack/pkg/config"
)

// GeminiEmbedder implements Embedder over the Gemini API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder builds an embedder from configuration. Requires
// GEMINI_API_KEY (or GOOGLE_API_KEY); GEMINI_EMBEDDING_MODEL overrides the
// default embedding model.
func NewGeminiEmbedder(ctx context.Context, manager config.Manager) (*GeminiEmbedder, error) {
	apiKey := strings.TrimSpace(manager.GetStringWithDefault("GEMINI_API_KEY", ""))
	if apiKey == "" {
		apiKey = strings.TrimSpace(manager.GetStringWithDefault("GOOGLE_API_KEY", ""))
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: please export GEMINI_API_KEY or GOOGLE_API_KEY", errMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		model:  manager.GetStringWithDefault("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
	}, nil
}

// Embed returns the embedding vector for text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini embed content: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("gemini embed content: empty response")
	}

	values := resp.Embeddings[0].Values
	vector := make([]float64, len(values))
	for i, v := range values {
		vector[i] = float64(v)
	}
	return vector, nil
}
