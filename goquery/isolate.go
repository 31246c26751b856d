package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitebind/sitebind"
)

// strippedSelectors are node types removed outright before isolation.
var strippedSelectors = "script, style, iframe, noscript"

// contentSelectors identify the main content region, in priority order.
// The list covers semantic landmarks first, then containers used by common
// documentation frameworks (Docusaurus, MkDocs, Sphinx, GitBook, VuePress).
var contentSelectors = []string{
	"main",
	"article",
	"[role=\"main\"]",
	".theme-doc-markdown",
	".md-content",
	".rst-content",
	".markdown-body",
	".book-body",
	".theme-default-content",
	".docs-content",
	"#content",
	".content",
}

// chromeSelectors are navigation/header/footer/sidebar-like regions removed
// from the body when no content selector matches.
var chromeSelectors = "nav, header, footer, aside, .sidebar, .navbar, .menu, .toc, .breadcrumbs"

// Ensure Isolator implements sitebind.Extractor at compile time.
var _ sitebind.Extractor = (*Isolator)(nil)

// Isolator extracts the main content region from HTML using a fixed
// priority list of content selectors.
type Isolator struct{}

// NewIsolator creates a new Isolator.
func NewIsolator() *Isolator {
	return &Isolator{}
}

// Extract processes raw HTML and returns the main content.
// It never fails on malformed input: an unrecoverable parse yields the
// original markup unchanged.
func (i *Isolator) Extract(rawHTML string) (*sitebind.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &sitebind.ExtractResult{ContentHTML: rawHTML}, nil
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.Join(strings.Fields(doc.Find("h1").First().Text()), " ")
	}

	doc.Find(strippedSelectors).Remove()

	for _, selector := range contentSelectors {
		region := doc.Find(selector).First()
		if region.Length() == 0 {
			continue
		}
		inner, err := region.Html()
		if err != nil || strings.TrimSpace(inner) == "" {
			continue
		}
		return &sitebind.ExtractResult{Title: title, ContentHTML: inner}, nil
	}

	// No content landmark matched: fall back to the body with chrome
	// regions stripped.
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return &sitebind.ExtractResult{Title: title, ContentHTML: rawHTML}, nil
	}
	body.Find(chromeSelectors).Remove()
	inner, err := body.Html()
	if err != nil {
		return &sitebind.ExtractResult{Title: title, ContentHTML: rawHTML}, nil
	}

	return &sitebind.ExtractResult{Title: title, ContentHTML: inner}, nil
}
