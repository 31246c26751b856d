// Package gemini implements document summarization using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sitebind/sitebind"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// SummaryPlaceholder is returned when summarization fails. The pipeline
// stores it verbatim instead of propagating the failure.
const SummaryPlaceholder = "(summary unavailable)"

// Ensure Summarizer implements sitebind.Summarizer at compile time.
var _ sitebind.Summarizer = (*Summarizer)(nil)

// Summarizer produces markdown summaries of page text using Google Gemini.
// Failures degrade to SummaryPlaceholder rather than an error.
type Summarizer struct {
	client *genai.Client
	logger *slog.Logger
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{client: client, logger: logger}
}

// Summarize returns a short markdown summary of plainText. Input beyond
// the submission cap is truncated before the call. A failed or empty
// model response yields SummaryPlaceholder, never an error.
func (s *Summarizer) Summarize(ctx context.Context, plainText string) (string, error) {
	if strings.TrimSpace(plainText) == "" {
		return SummaryPlaceholder, nil
	}

	prompt := BuildUserPrompt(sitebind.TruncateForSummary(plainText))
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		s.logger.Warn("summarization failed", "error", err)
		return SummaryPlaceholder, nil
	}
	if result == nil || result.Text() == "" {
		s.logger.Warn("summarization returned empty result")
		return SummaryPlaceholder, nil
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a technical writer. Summarize the provided page text in a few markdown sentences. Mention only what the text states; do not speculate.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the page text.
func BuildUserPrompt(plainText string) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	fmt.Fprintf(&sb, "<content>%s</content>\n", plainText)
	sb.WriteString("</page>\n\n")
	sb.WriteString("Summarize this page.")
	return sb.String()
}
