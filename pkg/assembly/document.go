package assembly

// Document is one retrieved text, owned by the caller of the Assembler and
// read-only to every core component. A document is either fully included in
// an assembled context or fully excluded; the placement strategies never
// truncate inside one.
type Document struct {
	ID      string
	Title   string
	Content string
	// TokenCount is an optional precomputed cost. When positive it is used
	// as-is and the tokenizer collaborator is not called for this document.
	TokenCount int
}

// RankedDocument pairs a document with its relevance to a query. The score
// is an opaque scalar from the embedding collaborator: higher means more
// relevant, and no fixed range is assumed.
type RankedDocument struct {
	Document Document
	Score    float64
}

// Key returns the identifier used in results and events: the ID when
// present, otherwise the title.
func (d Document) Key() string {
	if d.ID != "" {
		return d.ID
	}
	return d.Title
}

// admissionText renders the form a document is charged for: the same shape
// the formatter emits, minus the positional index that is unknown at
// admission time.
func admissionText(doc Document) string {
	title := doc.Title
	if title == "" {
		title = "Untitled"
	}
	return "Document: " + title + "\n\n" + doc.Content
}
