package assembly

import (
	"fmt"
	"sort"
)

// Strategy decides which documents are admitted under a budget and in what
// order. Implementations must treat docs and ranked as read-only and charge
// every admitted document against the budget exactly once.
type Strategy interface {
	// Name returns the identifier used for registry lookup and logging.
	Name() string

	// NeedsRanking reports whether Select requires a relevance ranking.
	NeedsRanking() bool

	// Select returns the admitted documents in final order. docs is the
	// caller's original order; ranked is the descending-relevance ranking
	// and is nil when NeedsRanking is false.
	Select(docs []Document, ranked []RankedDocument, budget *Budget) []Document
}

// Registry maps strategy names to implementations. New placement policies
// register here instead of growing a conditional chain in the assembler.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// NewDefaultRegistry creates a registry with the four built-in strategies.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(NewNaiveStrategy())
	registry.Register(NewPrimacyStrategy())
	registry.Register(NewRecencyStrategy())
	registry.Register(NewSandwichStrategy())
	return registry
}

// Register adds or replaces a strategy under its name.
func (r *Registry) Register(strategy Strategy) {
	r.strategies[strategy.Name()] = strategy
}

// Get returns the strategy for name, or ErrUnknownStrategy.
func (r *Registry) Get(name string) (Strategy, error) {
	strategy, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, r.Names())
	}
	return strategy, nil
}

// Names returns the registered strategy names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
