package embed

import (
	"context"
	"math"
)

// Embedder is the embedding collaborator contract: a fixed-length numeric
// vector for a text. Implementations decide the model and dimensionality;
// callers only compare vectors from the same embedder.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Cosine returns the cosine similarity of two vectors. A vector's
// similarity to itself is its maximum attainable value, which is all the
// ranking code relies on; no further range guarantee is made to callers.
// Degenerate input (mismatched lengths, zero vectors) yields 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
