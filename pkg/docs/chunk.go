package docs

import (
	"regexp"
	"strings"
)

// ChunkMethod selects how Chunk splits text.
type ChunkMethod string

const (
	// ChunkByParagraph splits on blank lines.
	ChunkByParagraph ChunkMethod = "paragraph"
	// ChunkBySentence splits on sentence-ending punctuation.
	ChunkBySentence ChunkMethod = "sentence"
	// ChunkFixed splits into fixed-size character windows.
	ChunkFixed ChunkMethod = "fixed"
)

// DefaultChunkSize is the window size for ChunkFixed when none is given.
const DefaultChunkSize = 500

var sentenceBoundary = regexp.MustCompile(`[.!?]+\s+`)

// Chunk splits text for embedding or selective loading. size only applies
// to ChunkFixed; zero or negative falls back to DefaultChunkSize. An
// unrecognized method yields the whole text as a single chunk.
func Chunk(text string, method ChunkMethod, size int) []string {
	switch method {
	case ChunkByParagraph:
		var chunks []string
		for _, part := range strings.Split(text, "\n\n") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				chunks = append(chunks, trimmed)
			}
		}
		return chunks

	case ChunkBySentence:
		var chunks []string
		for _, part := range sentenceBoundary.Split(text, -1) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				chunks = append(chunks, trimmed)
			}
		}
		return chunks

	case ChunkFixed:
		if size <= 0 {
			size = DefaultChunkSize
		}
		var chunks []string
		for start := 0; start < len(text); start += size {
			end := start + size
			if end > len(text) {
				end = len(text)
			}
			chunks = append(chunks, text[start:end])
		}
		return chunks

	default:
		return []string{text}
	}
}
