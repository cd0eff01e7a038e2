package docs

import (
	"fmt"

	"github.com/contextpack/contextpack/pkg/assembly"
)

// ValidationReport lists structural problems found in a corpus. Errors make
// the corpus unusable; Warnings flag missing metadata that degrades lookups
// or coverage reporting but does not block assembly.
type ValidationReport struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the corpus can be used at all.
func (r ValidationReport) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks each document for required and recommended fields.
// Content is required; id, title and a token count are recommended.
func Validate(documents []assembly.Document) ValidationReport {
	var report ValidationReport

	for i, doc := range documents {
		if doc.Content == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("document %d: missing content", i))
		}
		if doc.ID == "" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("document %d: missing id", i))
		}
		if doc.Title == "" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("document %d: missing title", i))
		}
		if doc.TokenCount == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("document %d: missing token count", i))
		}
	}

	return report
}
