package mock

import (
	"context"

	"github.com/sitebind/sitebind"
)

var _ sitebind.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of sitebind.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, plainText string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, plainText string) (string, error) {
	return s.SummarizeFn(ctx, plainText)
}
