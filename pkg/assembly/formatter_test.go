package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_TitledDocument(t *testing.T) {
	formatter := NewFormatter()

	got := formatter.Format([]Document{{Title: "T", Content: "C"}})

	assert.Equal(t, "Document 1: T\n\nC", got)
}

func TestFormat_MultipleDocumentsWithSeparator(t *testing.T) {
	formatter := NewFormatter()

	got := formatter.Format([]Document{
		{Title: "Alpha", Content: "first"},
		{Title: "Beta", Content: "second"},
	})

	assert.Equal(t, "Document 1: Alpha\n\nfirst\n\n---\n\nDocument 2: Beta\n\nsecond", got)
}

func TestFormat_TitlesDisabled(t *testing.T) {
	formatter := Formatter{IncludeTitles: false, Separator: DefaultSeparator}

	got := formatter.Format([]Document{
		{Title: "Alpha", Content: "first"},
		{Title: "Beta", Content: "second"},
	})

	assert.Equal(t, "first\n\n---\n\nsecond", got)
}

func TestFormat_UntitledDocumentRendersBareContent(t *testing.T) {
	formatter := NewFormatter()

	got := formatter.Format([]Document{
		{Title: "Alpha", Content: "first"},
		{Content: "second"},
	})

	// Titles render per document; an untitled one gets no header, and the
	// numbering of later titled documents still follows sequence position.
	assert.Equal(t, "Document 1: Alpha\n\nfirst\n\n---\n\nsecond", got)
}

func TestFormat_CustomSeparator(t *testing.T) {
	formatter := Formatter{IncludeTitles: false, Separator: "\n===\n"}

	got := formatter.Format([]Document{{Content: "a"}, {Content: "b"}})

	assert.Equal(t, "a\n===\nb", got)
}

func TestFormat_NumberingFollowsFinalOrder(t *testing.T) {
	formatter := NewFormatter()

	// Positions reflect the order handed to Format, not any source order.
	got := formatter.Format([]Document{
		{ID: "9", Title: "Last in source", Content: "x"},
		{ID: "1", Title: "First in source", Content: "y"},
	})

	assert.Equal(t, "Document 1: Last in source\n\nx\n\n---\n\nDocument 2: First in source\n\ny", got)
}

func TestFormat_EmptyInput(t *testing.T) {
	assert.Equal(t, "", NewFormatter().Format(nil))
	assert.Equal(t, "", NewFormatter().Format([]Document{}))
}
