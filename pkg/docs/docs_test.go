package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contextpack/contextpack/pkg/assembly"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDocuments_WrappedForm(t *testing.T) {
	path := writeFixture(t, "docs.json", `{
		"documents": [
			{"id": "d1", "title": "One", "content": "first", "tokens": 12},
			{"id": "d2", "content": "second"}
		]
	}`)

	docs, err := LoadDocuments(path)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, assembly.Document{ID: "d1", Title: "One", Content: "first", TokenCount: 12}, docs[0])
	assert.Equal(t, "second", docs[1].Content)
	assert.Zero(t, docs[1].TokenCount)
}

func TestLoadDocuments_BareArrayForm(t *testing.T) {
	path := writeFixture(t, "docs.json", `[{"id": "d1", "content": "only"}]`)

	docs, err := LoadDocuments(path)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestLoadDocuments_MissingFile(t *testing.T) {
	_, err := LoadDocuments(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadDocuments_MalformedJSON(t *testing.T) {
	path := writeFixture(t, "docs.json", `{"documents": `)

	_, err := LoadDocuments(path)
	assert.Error(t, err)
}

func TestLoadQuestions_BothForms(t *testing.T) {
	wrapped := writeFixture(t, "wrapped.json", `{
		"questions": [{"id": "q1", "question": "What?", "ground_truth": "That."}]
	}`)
	bare := writeFixture(t, "bare.json", `[{"question": "Why?", "ground_truth": "Because."}]`)

	fromWrapped, err := LoadQuestions(wrapped)
	require.NoError(t, err)
	require.Len(t, fromWrapped, 1)
	assert.Equal(t, "What?", fromWrapped[0].Question)
	assert.Equal(t, "That.", fromWrapped[0].GroundTruth)

	fromBare, err := LoadQuestions(bare)
	require.NoError(t, err)
	require.Len(t, fromBare, 1)
	assert.Equal(t, "Why?", fromBare[0].Question)
}

func TestIndex_SkipsDocumentsWithoutID(t *testing.T) {
	docs := []assembly.Document{
		{ID: "a", Content: "x"},
		{Content: "anonymous"},
		{ID: "b", Content: "y"},
	}

	index := Index(docs)

	assert.Len(t, index, 2)
	assert.Equal(t, "x", index["a"].Content)
	assert.Equal(t, "y", index["b"].Content)
}

func TestCoverage(t *testing.T) {
	all := []assembly.Document{
		{ID: "a", TokenCount: 100},
		{ID: "b", TokenCount: 300},
	}

	assert.InDelta(t, 0.25, Coverage(all[:1], all), 1e-9)
	assert.InDelta(t, 1.0, Coverage(all, all), 1e-9)
	assert.Zero(t, Coverage(nil, all))
}

func TestCoverage_EmptyCorpus(t *testing.T) {
	assert.Zero(t, Coverage(nil, nil))
}

func TestValidate(t *testing.T) {
	docs := []assembly.Document{
		{ID: "a", Title: "A", Content: "fine", TokenCount: 10},
		{ID: "b", Content: "no title or tokens"},
		{Title: "C"},
	}

	report := Validate(docs)

	assert.False(t, report.Valid())
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "document 2")
	// doc 1 misses title and tokens; doc 2 misses id and tokens.
	assert.Len(t, report.Warnings, 4)
}

func TestValidate_CleanCorpus(t *testing.T) {
	docs := []assembly.Document{{ID: "a", Title: "A", Content: "x", TokenCount: 5}}

	report := Validate(docs)

	assert.True(t, report.Valid())
	assert.Empty(t, report.Warnings)
}

func TestChunk_Paragraphs(t *testing.T) {
	text := "First paragraph.\nStill first.\n\nSecond paragraph.\n\n\n\nThird."

	chunks := Chunk(text, ChunkByParagraph, 0)

	assert.Equal(t, []string{"First paragraph.\nStill first.", "Second paragraph.", "Third."}, chunks)
}

func TestChunk_Sentences(t *testing.T) {
	chunks := Chunk("One. Two! Three? Four", ChunkBySentence, 0)

	assert.Equal(t, []string{"One", "Two", "Three", "Four"}, chunks)
}

func TestChunk_Fixed(t *testing.T) {
	chunks := Chunk("abcdefghij", ChunkFixed, 4)

	assert.Equal(t, []string{"abcd", "efgh", "ij"}, chunks)
}

func TestChunk_FixedDefaultSize(t *testing.T) {
	text := string(make([]byte, DefaultChunkSize+1))

	chunks := Chunk(text, ChunkFixed, 0)

	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], DefaultChunkSize)
}

func TestChunk_UnknownMethod(t *testing.T) {
	assert.Equal(t, []string{"as is"}, Chunk("as is", "mystery", 0))
}
