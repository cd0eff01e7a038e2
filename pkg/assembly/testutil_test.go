package assembly

import (
	"context"
	"math"
	"strings"
	"sync"
)

// fieldCounter counts whitespace-separated fields as tokens. Deterministic
// and cheap, which is all the budget logic needs in tests.
type fieldCounter struct{}

func (fieldCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// scoreEmbedder maps known texts to unit vectors whose cosine against the
// query vector [1, 0] equals the configured score. Unknown texts (including
// the query itself) embed to [1, 0].
type scoreEmbedder struct {
	scores map[string]float64
	err    error
	calls  int
}

func (e *scoreEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	score, ok := e.scores[text]
	if !ok {
		return []float64{1, 0}, nil
	}
	return []float64{score, math.Sqrt(1 - score*score)}, nil
}

// capturingPublisher records events synchronously for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events map[string][]interface{}
}

func newCapturingPublisher() *capturingPublisher {
	return &capturingPublisher{events: make(map[string][]interface{})}
}

func (p *capturingPublisher) Publish(topic string, event interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[topic] = append(p.events[topic], event)
}

func (p *capturingPublisher) byTopic(topic string) []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]interface{}(nil), p.events[topic]...)
}

// mustBudget builds a budget or fails loudly; for tests that are not about
// construction errors.
func mustBudget(maxTokens, overhead int) *Budget {
	budget, err := NewBudget(maxTokens, overhead, fieldCounter{})
	if err != nil {
		panic(err)
	}
	return budget
}

// rankedFixture builds a descending ranking from documents already in
// relevance order, assigning evenly spaced scores.
func rankedFixture(docs ...Document) []RankedDocument {
	ranked := make([]RankedDocument, len(docs))
	for i, doc := range docs {
		ranked[i] = RankedDocument{Document: doc, Score: 1.0 - float64(i)*0.05}
	}
	return ranked
}

// costDoc builds a document with a fixed precomputed token cost.
func costDoc(id string, cost int) Document {
	return Document{ID: id, Title: "Doc " + id, Content: "content " + id, TokenCount: cost}
}
