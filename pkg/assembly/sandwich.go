package assembly

// SandwichStrategy places pockets of highly relevant material at both ends
// of the context and buries lower-relevance filler in the middle, exploiting
// a model's attention bias toward the extremes of its input.
//
// Admission runs most-relevant first with the same stop-at-first-non-fit
// rule as primacy. The fitting set is then split: the top k = max(2, n/3)
// documents are divided between a start group and an end group, and the
// rest stay in the interior in the relevance order they already had.
type SandwichStrategy struct{}

func NewSandwichStrategy() *SandwichStrategy {
	return &SandwichStrategy{}
}

func (s *SandwichStrategy) Name() string {
	return "sandwich"
}

func (s *SandwichStrategy) NeedsRanking() bool {
	return true
}

// Select admits by descending relevance, then rearranges into
// start ++ middle ++ end.
func (s *SandwichStrategy) Select(_ []Document, ranked []RankedDocument, budget *Budget) []Document {
	var fitting []Document
	for _, rd := range ranked {
		if !budget.Admit(budget.DocumentCost(rd.Document)) {
			break
		}
		fitting = append(fitting, rd.Document)
	}

	// Too few documents to sandwich; primacy order is the fallback.
	if len(fitting) < 3 {
		return fitting
	}

	k := len(fitting) / 3
	if k < 2 {
		k = 2
	}

	// The start group takes the smaller half when k is odd, so the end
	// pocket ends up one document richer. Callers depend on this exact
	// layout; do not "even it out".
	half := k / 2
	start := fitting[:half]
	end := fitting[half:k]
	middle := fitting[k:]

	ordered := make([]Document, 0, len(fitting))
	ordered = append(ordered, start...)
	ordered = append(ordered, middle...)
	ordered = append(ordered, end...)
	return ordered
}
