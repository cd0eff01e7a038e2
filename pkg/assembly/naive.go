package assembly

// NaiveStrategy admits documents in their original input order and stops at
// the first one that does not fit, without scanning further. This models a
// caller who appends documents in a fixed priority order and truncates the
// tail once the budget is exhausted; it is not a best-fit packing.
type NaiveStrategy struct{}

func NewNaiveStrategy() *NaiveStrategy {
	return &NaiveStrategy{}
}

func (s *NaiveStrategy) Name() string {
	return "naive"
}

func (s *NaiveStrategy) NeedsRanking() bool {
	return false
}

// Select admits documents in input order until one does not fit.
func (s *NaiveStrategy) Select(docs []Document, _ []RankedDocument, budget *Budget) []Document {
	var admitted []Document
	for _, doc := range docs {
		if !budget.Admit(budget.DocumentCost(doc)) {
			break
		}
		admitted = append(admitted, doc)
	}
	return admitted
}
