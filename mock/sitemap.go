package mock

import (
	"context"

	"github.com/sitebind/sitebind"
)

var _ sitebind.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of sitebind.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *sitebind.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *sitebind.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
