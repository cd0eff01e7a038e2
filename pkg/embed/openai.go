package embed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/contextpack/contextpack/pkg/config"
)

var errMissingAPIKey = errors.New("missing API key")

// embeddingService is the slice of the OpenAI SDK the embedder depends on,
// kept narrow so tests can substitute it.
type embeddingService interface {
	New(ctx context.Context, body openai.EmbeddingNewParams, opts ...option.RequestOption) (*openai.CreateEmbeddingResponse, error)
}

// OpenAIEmbedder implements Embedder over the OpenAI embeddings API.
type OpenAIEmbedder struct {
	embeddings embeddingService
	model      openai.EmbeddingModel
}

// NewOpenAIEmbedder builds an embedder from configuration. Requires
// OPENAI_API_KEY; honors OPENAI_BASE_URL for proxies and compatible servers.
func NewOpenAIEmbedder(manager config.Manager) (*OpenAIEmbedder, error) {
	apiKey := strings.TrimSpace(manager.GetStringWithDefault("OPENAI_API_KEY", ""))
	if apiKey == "" {
		return nil, fmt.Errorf("%w: please export OPENAI_API_KEY", errMissingAPIKey)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL := strings.TrimSpace(manager.GetStringWithDefault("OPENAI_BASE_URL", "")); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	service := client.Embeddings

	return &OpenAIEmbedder{
		embeddings: &service,
		model:      openai.EmbeddingModel(manager.GetModelConfig().EmbeddingModel),
	}, nil
}

// Embed returns the embedding vector for text.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: e.model,
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai embeddings: empty response")
	}

	return resp.Data[0].Embedding, nil
}
