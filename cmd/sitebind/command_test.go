package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/crawl"
	"github.com/sitebind/sitebind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps() (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestScanCmd_sitemap_mode_prints_discovered_URLs(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	deps.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *sitebind.URLFilter) ([]string, error) {
			return []string{"https://example.com/docs/a", "https://example.com/docs/b"}, nil
		},
	}

	cmd := &ScanCmd{URL: "https://example.com", Sitemap: true}
	require.NoError(t, cmd.Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "https://example.com/docs/a")
	assert.Contains(t, out, "https://example.com/docs/b")
}

func TestScanCmd_sitemap_mode_suggests_crawling_when_empty(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	deps.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *sitebind.URLFilter) ([]string, error) {
			return nil, nil
		},
	}

	cmd := &ScanCmd{URL: "https://example.com", Sitemap: true}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "No sitemap URLs found")
}

func TestBindCmd_fails_when_the_filter_selects_nothing(t *testing.T) {
	t.Parallel()

	deps, _, _ := testDeps()
	deps.Crawler = &crawl.Crawler{
		Gateway: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		},
		Links: &mock.LinkExtractor{
			ExtractLinksFn: func(html, baseURL string) ([]sitebind.DiscoveredLink, error) {
				return []sitebind.DiscoveredLink{{Href: "https://example.com/a", Text: "A"}}, nil
			},
		},
		Limiter: crawl.NewHostLimiter(time.Millisecond),
	}

	cmd := &BindCmd{URL: "https://example.com", Filter: []string{"nomatch-zzz"}}
	err := cmd.Run(deps)

	require.Error(t, err)
	assert.Equal(t, sitebind.ENOTFOUND, sitebind.ErrorCode(err))
}

func TestBindCmd_rejects_invalid_seed_URLs(t *testing.T) {
	t.Parallel()

	deps, _, _ := testDeps()

	cmd := &BindCmd{URL: "not-a-url"}
	err := cmd.Run(deps)

	require.Error(t, err)
	assert.Equal(t, sitebind.EINVALID, sitebind.ErrorCode(err))
}

func TestDeleteCmd_requires_force(t *testing.T) {
	t.Parallel()

	deps, _, stderr := testDeps()

	cmd := &DeleteCmd{Session: "s1"}
	err := cmd.Run(deps)

	require.Error(t, err)
	assert.Equal(t, sitebind.EINVALID, sitebind.ErrorCode(err))
	assert.Contains(t, stderr.String(), "--force")
}
