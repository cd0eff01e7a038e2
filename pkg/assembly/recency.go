package assembly

// RecencyStrategy places the most relevant documents last. Admission runs
// most-relevant first, exactly like primacy, and the admitted sequence is
// then reversed so the best material sits at the end of the context, where
// recency-biased models attend most. Running admission before reversal
// guarantees the budget is spent on the highest-relevance documents rather
// than on whatever happens to sort first ascending.
type RecencyStrategy struct{}

func NewRecencyStrategy() *RecencyStrategy {
	return &RecencyStrategy{}
}

func (s *RecencyStrategy) Name() string {
	return "recency"
}

func (s *RecencyStrategy) NeedsRanking() bool {
	return true
}

// Select admits most-relevant first, then reverses the admitted sequence.
func (s *RecencyStrategy) Select(_ []Document, ranked []RankedDocument, budget *Budget) []Document {
	var admitted []Document
	for _, rd := range ranked {
		if !budget.Admit(budget.DocumentCost(rd.Document)) {
			break
		}
		admitted = append(admitted, rd.Document)
	}

	for i, j := 0, len(admitted)-1; i < j; i, j = i+1, j-1 {
		admitted[i], admitted[j] = admitted[j], admitted[i]
	}
	return admitted
}
