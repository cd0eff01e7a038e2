package tokens

// Counter is the tokenizer collaborator contract: a deterministic token
// count for a given text under a fixed encoding.
type Counter interface {
	Count(text string) int
}

// Codec extends Counter with an encode/decode round-trip. Only the
// truncation utility needs it; budget accounting works with Count alone.
type Codec interface {
	Counter
	Encode(text string) []int
	Decode(tokens []int) string
}

// Estimator is a heuristic Counter using the chars/4 rule. It slightly
// overestimates for English text, which is the safe direction for budget
// accounting. Use it where a real encoder is unavailable or too costly.
type Estimator struct{}

func NewEstimator() Estimator {
	return Estimator{}
}

// Count returns a conservative token estimate for a string.
func (Estimator) Count(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4 // ceiling division
}
