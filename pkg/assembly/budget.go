package assembly

import (
	"fmt"

	"github.com/contextpack/contextpack/pkg/tokens"
)

// Budget enforces a token ceiling during one assembly call. Overhead tokens
// are reserved up front for the query and instructions and are never
// available for document content. A Budget is scoped to a single assembly
// invocation and must not be shared across concurrent calls.
//
// Separating CanAdmit from Admit lets a strategy probe feasibility for a
// whole candidate list before committing to a final arrangement, without
// double-charging tokens.
type Budget struct {
	maxTokens int
	overhead  int
	used      int
	counter   tokens.Counter
}

// NewBudget creates a budget with usage at zero. Fails with
// ErrInvalidBudget when either value is negative or overhead exceeds the
// ceiling. A nil counter falls back to the chars/4 estimator.
func NewBudget(maxTokens, overhead int, counter tokens.Counter) (*Budget, error) {
	if maxTokens < 0 || overhead < 0 {
		return nil, fmt.Errorf("%w: max_tokens=%d overhead=%d must be non-negative", ErrInvalidBudget, maxTokens, overhead)
	}
	if overhead > maxTokens {
		return nil, fmt.Errorf("%w: overhead %d exceeds ceiling %d", ErrInvalidBudget, overhead, maxTokens)
	}
	if counter == nil {
		counter = tokens.NewEstimator()
	}
	return &Budget{maxTokens: maxTokens, overhead: overhead, counter: counter}, nil
}

// Available returns the ceiling minus the reserved overhead.
func (b *Budget) Available() int {
	return b.maxTokens - b.overhead
}

// Used returns the tokens admitted so far.
func (b *Budget) Used() int {
	return b.used
}

// Remaining returns the unadmitted balance. Never negative.
func (b *Budget) Remaining() int {
	return b.Available() - b.used
}

// Utilization returns usage as a fraction of the available budget (0-1).
func (b *Budget) Utilization() float64 {
	if b.Available() <= 0 {
		return 0
	}
	return float64(b.used) / float64(b.Available())
}

// CanAdmit reports whether cost more tokens fit. Pure predicate, no state change.
func (b *Budget) CanAdmit(cost int) bool {
	if cost < 0 {
		return false
	}
	return b.used+cost <= b.Available()
}

// CanAdmitText reports whether text fits, counting it via the tokenizer
// collaborator. Calls the collaborator but does not mutate budget state.
func (b *Budget) CanAdmitText(text string) bool {
	return b.CanAdmit(b.counter.Count(text))
}

// Admit reserves cost tokens if they fit and reports whether it did.
// On a false return the budget is unchanged. This is the only mutator.
func (b *Budget) Admit(cost int) bool {
	if !b.CanAdmit(cost) {
		return false
	}
	b.used += cost
	return true
}

// AdmitText reserves the token cost of text if it fits.
func (b *Budget) AdmitText(text string) bool {
	return b.Admit(b.counter.Count(text))
}

// Reset zeroes usage so a strategy can re-evaluate a candidate set from scratch.
func (b *Budget) Reset() {
	b.used = 0
}

// DocumentCost returns the cost of admitting doc: the precomputed count
// when present, otherwise the tokenized admission form.
func (b *Budget) DocumentCost(doc Document) int {
	if doc.TokenCount > 0 {
		return doc.TokenCount
	}
	return b.counter.Count(admissionText(doc))
}
