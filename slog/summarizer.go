package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitebind/sitebind"
)

// Ensure LoggingSummarizer implements sitebind.Summarizer.
var _ sitebind.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with per-call logging.
type LoggingSummarizer struct {
	next   sitebind.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next sitebind.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, plainText string) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"input_chars", len(plainText),
			"output_chars", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, plainText)
}
