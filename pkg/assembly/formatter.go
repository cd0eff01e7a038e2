package assembly

import (
	"fmt"
	"strings"
)

// DefaultSeparator is the rule placed between rendered documents.
const DefaultSeparator = "\n\n---\n\n"

// Formatter renders an ordered document sequence into one context string.
// Rendering is deterministic: the same sequence always yields the same text.
type Formatter struct {
	IncludeTitles bool
	Separator     string
}

// NewFormatter returns a formatter with titles on and the default separator.
func NewFormatter() Formatter {
	return Formatter{IncludeTitles: true, Separator: DefaultSeparator}
}

// Format joins the documents with the separator. A titled document renders
// as "Document <n>: <title>" over its content, where n is the 1-based
// position in the sequence as passed in, not any original ordering.
// Empty input yields an empty string.
func (f Formatter) Format(docs []Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for i, doc := range docs {
		if f.IncludeTitles && doc.Title != "" {
			parts = append(parts, fmt.Sprintf("Document %d: %s\n\n%s", i+1, doc.Title, doc.Content))
		} else {
			parts = append(parts, doc.Content)
		}
	}

	return strings.Join(parts, f.Separator)
}
