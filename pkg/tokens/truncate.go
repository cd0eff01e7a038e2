package tokens

// TruncateMode selects which side of the text survives truncation.
type TruncateMode int

const (
	// KeepHead drops tokens from the end of the text.
	KeepHead TruncateMode = iota
	// KeepTail drops tokens from the beginning of the text.
	KeepTail
)

// FitsInBudget reports whether text fits within budget tokens.
func FitsInBudget(counter Counter, text string, budget int) bool {
	return counter.Count(text) <= budget
}

// Truncate cuts text down to at most budget tokens by encoding, slicing
// the token sequence, and decoding the remainder. Text already within
// budget is returned unchanged. A non-positive budget yields the empty
// string. The placement strategies never call this: they include or skip
// whole documents and leave partial inclusion to callers who opt in.
func Truncate(codec Codec, text string, budget int, mode TruncateMode) string {
	if budget <= 0 {
		return ""
	}
	if FitsInBudget(codec, text, budget) {
		return text
	}

	toks := codec.Encode(text)
	switch mode {
	case KeepTail:
		toks = toks[len(toks)-budget:]
	default:
		toks = toks[:budget]
	}

	return codec.Decode(toks)
}
