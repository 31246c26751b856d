// Package goquery provides CSS-selector based implementations of link
// extraction, content isolation, and reference rewriting over parsed HTML.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitebind/sitebind"
)

// navDensityThreshold is the minimum number of anchors a candidate
// navigation region must contain to be preferred over the full document.
const navDensityThreshold = 5

// navRegionSelectors are candidate navigation-dense regions, in priority
// order. The first one containing more than navDensityThreshold anchors
// is used as the link source.
var navRegionSelectors = []string{
	"nav",
	"aside",
	"[role=\"navigation\"]",
	".sidebar",
	".menu",
	".toc",
	".navbar",
}

// Ensure LinkExtractor implements sitebind.LinkExtractor at compile time.
var _ sitebind.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts deduplicated, same-host navigation links from HTML.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses html and returns discovered links in document order.
// It prefers the first navigation-dense region over the full document,
// resolves relative hrefs against baseURL, filters cross-host targets,
// and deduplicates by normalized URL keeping the first-seen label.
// An empty result is not an error.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]sitebind.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitebind.Errorf(sitebind.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitebind.Errorf(sitebind.EINVALID, "failed to parse HTML: %v", err)
	}

	scope := doc.Selection
	for _, selector := range navRegionSelectors {
		region := doc.Find(selector).First()
		if region.Length() > 0 && region.Find("a[href]").Length() > navDensityThreshold {
			scope = region
			break
		}
	}

	seen := make(map[string]bool)
	var links []sitebind.DiscoveredLink

	scope.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || isNonNavigable(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Hostname() != base.Hostname() {
			return
		}

		normalized := sitebind.NormalizeURL(resolved.String())
		if seen[normalized] {
			return
		}
		seen[normalized] = true

		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text == "" {
			text = sitebind.PlaceholderLabel
		}

		links = append(links, sitebind.DiscoveredLink{
			Href: normalized,
			Text: text,
		})
	})

	return links, nil
}

// isNonNavigable checks if a href uses a protocol that cannot be crawled.
func isNonNavigable(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
