package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/mock"
	sbslog "github.com/sitebind/sitebind/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_logs_discovery_count(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *sitebind.URLFilter) ([]string, error) {
			return []string{"https://example.com/a", "https://example.com/b"}, nil
		},
	}

	svc := sbslog.NewLoggingSitemapService(inner, logger)
	urls, err := svc.DiscoverURLs(context.Background(), "https://example.com", nil)

	require.NoError(t, err)
	assert.Len(t, urls, 2)
	output := buf.String()
	assert.Contains(t, output, "sitemap discovery")
	assert.Contains(t, output, "count=2")
}

func TestLoggingSummarizer_logs_input_and_output_sizes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Summarizer{
		SummarizeFn: func(ctx context.Context, plainText string) (string, error) {
			return "ok", nil
		},
	}

	s := sbslog.NewLoggingSummarizer(inner, logger)
	summary, err := s.Summarize(context.Background(), "some text")

	require.NoError(t, err)
	assert.Equal(t, "ok", summary)
	output := buf.String()
	assert.Contains(t, output, "summarize")
	assert.Contains(t, output, "input_chars=9")
	assert.Contains(t, output, "output_chars=2")
}
