package mock

import "github.com/sitebind/sitebind"

var _ sitebind.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of sitebind.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]sitebind.DiscoveredLink, error)
}

func (l *LinkExtractor) ExtractLinks(html string, baseURL string) ([]sitebind.DiscoveredLink, error) {
	return l.ExtractLinksFn(html, baseURL)
}
