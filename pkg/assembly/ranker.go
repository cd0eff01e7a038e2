package assembly

import (
	"context"
	"fmt"
	"sort"

	"github.com/contextpack/contextpack/pkg/embed"
)

// Ranker produces a total order over documents by similarity to a query,
// using the embedding collaborator. It caches nothing across calls; if
// embedding reuse matters, the collaborator is the place for it.
type Ranker struct {
	embedder embed.Embedder
}

// NewRanker creates a ranker over the given embedder.
func NewRanker(embedder embed.Embedder) *Ranker {
	return &Ranker{embedder: embedder}
}

// Rank returns the documents in descending relevance order. The sort is
// stable: documents with equal scores keep their original relative order.
// One collaborator call per document plus one for the query.
func (r *Ranker) Rank(ctx context.Context, documents []Document, query string) ([]RankedDocument, error) {
	if r.embedder == nil {
		return nil, ErrMissingRanker
	}

	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	ranked := make([]RankedDocument, 0, len(documents))
	for _, doc := range documents {
		docVec, err := r.embedder.Embed(ctx, doc.Content)
		if err != nil {
			return nil, fmt.Errorf("embed document %q: %w", doc.Key(), err)
		}
		ranked = append(ranked, RankedDocument{
			Document: doc,
			Score:    embed.Cosine(queryVec, docVec),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}
