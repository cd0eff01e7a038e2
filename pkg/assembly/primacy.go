package assembly

// PrimacyStrategy places the most relevant documents first: it walks the
// ranking in descending relevance and stops at the first document that does
// not fit. Exploits a model's attention bias toward the start of its input.
type PrimacyStrategy struct{}

func NewPrimacyStrategy() *PrimacyStrategy {
	return &PrimacyStrategy{}
}

func (s *PrimacyStrategy) Name() string {
	return "primacy"
}

func (s *PrimacyStrategy) NeedsRanking() bool {
	return true
}

// Select admits documents most-relevant first until one does not fit.
func (s *PrimacyStrategy) Select(_ []Document, ranked []RankedDocument, budget *Budget) []Document {
	var admitted []Document
	for _, rd := range ranked {
		if !budget.Admit(budget.DocumentCost(rd.Document)) {
			break
		}
		admitted = append(admitted, rd.Document)
	}
	return admitted
}
