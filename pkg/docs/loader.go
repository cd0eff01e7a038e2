package docs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/contextpack/contextpack/pkg/assembly"
)

// Question is one evaluation item: a question about the corpus and the
// reference answer it is graded against.
type Question struct {
	ID          string `json:"id,omitempty"`
	Question    string `json:"question"`
	GroundTruth string `json:"ground_truth"`
}

// document is the wire form; token counts ride along as "tokens".
type document struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Tokens  int    `json:"tokens,omitempty"`
}

type documentFile struct {
	Documents []document `json:"documents"`
}

type questionFile struct {
	Questions []Question `json:"questions"`
}

// LoadDocuments reads a corpus file. Both shapes are accepted: a bare JSON
// array of documents, or an object with a "documents" key.
func LoadDocuments(path string) ([]assembly.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document file: %w", err)
	}

	var wrapped documentFile
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Documents != nil {
		return toDocuments(wrapped.Documents), nil
	}

	var bare []document
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parsing document file %s: %w", path, err)
	}
	return toDocuments(bare), nil
}

// LoadQuestions reads an evaluation question file. Both shapes are accepted:
// a bare JSON array, or an object with a "questions" key.
func LoadQuestions(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question file: %w", err)
	}

	var wrapped questionFile
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Questions != nil {
		return wrapped.Questions, nil
	}

	var bare []Question
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parsing question file %s: %w", path, err)
	}
	return bare, nil
}

func toDocuments(raw []document) []assembly.Document {
	out := make([]assembly.Document, len(raw))
	for i, doc := range raw {
		out[i] = assembly.Document{
			ID:         doc.ID,
			Title:      doc.Title,
			Content:    doc.Content,
			TokenCount: doc.Tokens,
		}
	}
	return out
}

// Index maps document IDs to documents for quick lookup. Documents without
// an ID are left out.
func Index(documents []assembly.Document) map[string]assembly.Document {
	index := make(map[string]assembly.Document, len(documents))
	for _, doc := range documents {
		if doc.ID != "" {
			index[doc.ID] = doc
		}
	}
	return index
}

// Coverage reports the fraction of corpus tokens present in the selection,
// based on precomputed token counts. Zero total yields zero coverage.
func Coverage(selected, all []assembly.Document) float64 {
	var selectedTokens, totalTokens int
	for _, doc := range selected {
		selectedTokens += doc.TokenCount
	}
	for _, doc := range all {
		totalTokens += doc.TokenCount
	}
	if totalTokens == 0 {
		return 0
	}
	return float64(selectedTokens) / float64(totalTokens)
}
