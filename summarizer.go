package sitebind

import (
	"context"
	"unicode/utf8"
)

// MaxSummaryInput is the maximum number of characters of plain text
// submitted to the summarization collaborator.
const MaxSummaryInput = 20000

// Summarizer produces a markdown summary of a document's plain text.
//
// Implementations must degrade gracefully: on failure they return a
// human-readable placeholder string rather than an error the pipeline
// would have to handle.
type Summarizer interface {
	Summarize(ctx context.Context, plainText string) (string, error)
}

// TruncateForSummary bounds plain text to MaxSummaryInput characters
// before submission to a Summarizer. The cut never splits a multi-byte
// rune, so the result is always valid UTF-8.
func TruncateForSummary(plainText string) string {
	if len(plainText) <= MaxSummaryInput {
		return plainText
	}
	cut := MaxSummaryInput
	for cut > 0 && !utf8.RuneStart(plainText[cut]) {
		cut--
	}
	return plainText[:cut]
}
