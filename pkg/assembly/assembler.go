package assembly

import (
	"context"
	"fmt"

	"github.com/contextpack/contextpack/pkg/embed"
	"github.com/contextpack/contextpack/pkg/events"
	"github.com/contextpack/contextpack/pkg/logging"
	"github.com/contextpack/contextpack/pkg/tokens"
)

// Options configures one assembly call. Start from DefaultOptions and
// override; a zero MaxTokens is an invalid budget, not a default.
type Options struct {
	Strategy      string
	MaxTokens     int
	Overhead      int
	IncludeTitles bool
	Separator     string
}

// DefaultOptions returns the standard configuration: naive strategy,
// 4000-token ceiling with 50 tokens reserved for query and instructions,
// titled rendering with the default separator.
func DefaultOptions() Options {
	return Options{
		Strategy:      "naive",
		MaxTokens:     4000,
		Overhead:      50,
		IncludeTitles: true,
		Separator:     DefaultSeparator,
	}
}

// Result is the outcome of one assembly call. Context is the final string;
// Documents is the admitted subsequence in final order.
type Result struct {
	Context     string
	Documents   []Document
	DocumentIDs []string
	TokensUsed  int
	Remaining   int
	Strategy    string
}

// Assembler drives ranking, strategy-driven selection under budget, and
// formatting. It holds no state across calls; each Assemble invocation
// builds its own Budget.
type Assembler struct {
	counter   tokens.Counter
	embedder  embed.Embedder
	registry  *Registry
	publisher events.Publisher
	logger    logging.Logger
}

// NewAssembler creates an assembler. embedder may be nil, in which case
// only strategies that need no ranking are usable. A nil publisher or
// logger is replaced with a no-op.
func NewAssembler(counter tokens.Counter, embedder embed.Embedder, publisher events.Publisher, logger logging.Logger) *Assembler {
	if publisher == nil {
		publisher = &events.NoOpPublisher{}
	}
	if logger == nil {
		logger = logging.NewDisabledLogger()
	}
	return &Assembler{
		counter:   counter,
		embedder:  embedder,
		registry:  NewDefaultRegistry(),
		publisher: publisher,
		logger:    logger,
	}
}

// Registry exposes the strategy registry so callers can add placement
// policies beyond the built-in four.
func (a *Assembler) Registry() *Registry {
	return a.registry
}

// Assemble packages documents into a single budget-respecting context
// string for query. The caller's document slice is never mutated. Either a
// valid context is returned or an error; there is no silent partial output.
func (a *Assembler) Assemble(ctx context.Context, documents []Document, query string, opts Options) (*Result, error) {
	strategy, err := a.registry.Get(opts.Strategy)
	if err != nil {
		return nil, err
	}

	budget, err := NewBudget(opts.MaxTokens, opts.Overhead, a.counter)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, len(documents))
	copy(docs, documents)

	var ranked []RankedDocument
	if strategy.NeedsRanking() {
		if a.embedder == nil {
			return nil, fmt.Errorf("%w: strategy %q requires an embedding collaborator", ErrMissingRanker, strategy.Name())
		}
		ranked, err = NewRanker(a.embedder).Rank(ctx, docs, query)
		if err != nil {
			return nil, err
		}
	}

	admitted := strategy.Select(docs, ranked, budget)

	formatter := Formatter{IncludeTitles: opts.IncludeTitles, Separator: opts.Separator}
	result := &Result{
		Context:     formatter.Format(admitted),
		Documents:   admitted,
		DocumentIDs: documentKeys(admitted),
		TokensUsed:  budget.Used(),
		Remaining:   budget.Remaining(),
		Strategy:    strategy.Name(),
	}

	a.publishSkipped(strategy.Name(), docs, admitted, budget)
	a.publisher.Publish(events.ContextAssembledEvent{}.Topic(), events.ContextAssembledEvent{
		Strategy:    result.Strategy,
		Query:       query,
		DocumentIDs: result.DocumentIDs,
		TokensUsed:  result.TokensUsed,
		Remaining:   result.Remaining,
	})
	a.logger.Debug("context assembled",
		"strategy", result.Strategy,
		"admitted", len(admitted),
		"candidates", len(docs),
		"tokens_used", result.TokensUsed,
		"remaining", result.Remaining,
	)

	return result, nil
}

// publishSkipped emits one event per candidate left out of the final order.
func (a *Assembler) publishSkipped(strategy string, candidates, admitted []Document, budget *Budget) {
	included := make(map[Document]int, len(admitted))
	for _, doc := range admitted {
		included[doc]++
	}

	for _, doc := range candidates {
		if included[doc] > 0 {
			included[doc]--
			continue
		}
		a.publisher.Publish(events.DocumentSkippedEvent{}.Topic(), events.DocumentSkippedEvent{
			Strategy:   strategy,
			DocumentID: doc.Key(),
			Title:      doc.Title,
			Cost:       budget.DocumentCost(doc),
			Remaining:  budget.Remaining(),
		})
	}
}

func documentKeys(docs []Document) []string {
	keys := make([]string, 0, len(docs))
	for _, doc := range docs {
		keys = append(keys, doc.Key())
	}
	return keys
}
