package embed

import (
	"context"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contextpack/contextpack/pkg/config"
)

func TestCosine_Identical(t *testing.T) {
	v := []float64{0.5, -0.2, 0.8}

	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_Orthogonal(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}

	assert.InDelta(t, 0.0, Cosine(a, b), 1e-9)
}

func TestCosine_Opposite(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{-1, -2, -3}

	assert.InDelta(t, -1.0, Cosine(a, b), 1e-9)
}

func TestCosine_SelfSimilarityIsMaximal(t *testing.T) {
	self := []float64{0.3, 0.4, 0.5}
	others := [][]float64{
		{0.1, 0.9, 0.2},
		{-0.3, 0.4, 0.5},
		{1, 1, 1},
	}

	selfScore := Cosine(self, self)
	for _, other := range others {
		assert.LessOrEqual(t, Cosine(self, other), selfScore)
	}
}

func TestCosine_DegenerateInput(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 2}))
}

func TestNewOpenAIEmbedder_RequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewOpenAIEmbedder(config.NewManager())
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingAPIKey)
}

type stubEmbeddingService struct {
	captured  openai.EmbeddingNewParams
	responses *openai.CreateEmbeddingResponse
	err       error
}

func (s *stubEmbeddingService) New(ctx context.Context, body openai.EmbeddingNewParams, opts ...option.RequestOption) (*openai.CreateEmbeddingResponse, error) {
	s.captured = body
	return s.responses, s.err
}

func TestOpenAIEmbedder_Embed(t *testing.T) {
	stub := &stubEmbeddingService{
		responses: &openai.CreateEmbeddingResponse{
			Data: []openai.Embedding{
				{Embedding: []float64{0.1, 0.2, 0.3}},
			},
		},
	}
	embedder := &OpenAIEmbedder{embeddings: stub, model: openai.EmbeddingModel("text-embedding-3-small")}

	vector, err := embedder.Embed(context.Background(), "what is context engineering?")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vector)
	assert.Equal(t, openai.EmbeddingModel("text-embedding-3-small"), stub.captured.Model)
}

func TestOpenAIEmbedder_EmptyResponse(t *testing.T) {
	stub := &stubEmbeddingService{responses: &openai.CreateEmbeddingResponse{}}
	embedder := &OpenAIEmbedder{embeddings: stub}

	_, err := embedder.Embed(context.Background(), "query")
	assert.Error(t, err)
}

func TestNewGeminiEmbedder_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := NewGeminiEmbedder(context.Background(), config.NewManager())
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingAPIKey)
}
