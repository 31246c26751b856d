package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitebind/sitebind"
)

// Ensure Rewriter implements sitebind.RefRewriter at compile time.
var _ sitebind.RefRewriter = (*Rewriter)(nil)

// Rewriter absolutizes src and href attribute values in an HTML fragment
// so the fragment is self-contained when viewed away from its origin.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Rewrite resolves root-relative and document-relative src/href values
// against baseURL. Absolute and protocol-qualified values pass through
// unchanged. Rewrite is total: unparseable input is returned as-is.
func (r *Rewriter) Rewrite(fragment string, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return fragment, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment, nil
	}

	rewriteAttr(doc, base, "src")
	rewriteAttr(doc, base, "href")

	// goquery wraps fragments in html/body; return the body's inner markup.
	inner, err := doc.Find("body").Html()
	if err != nil {
		return fragment, nil
	}
	return inner, nil
}

func rewriteAttr(doc *goquery.Document, base *url.URL, attr string) {
	doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
		val, exists := sel.Attr(attr)
		if !exists {
			return
		}
		val = strings.TrimSpace(val)
		if val == "" || !isRelative(val) {
			return
		}
		ref, err := url.Parse(val)
		if err != nil {
			return
		}
		sel.SetAttr(attr, base.ResolveReference(ref).String())
	})
}

// isRelative reports whether a reference needs resolution. Absolute URLs,
// protocol-relative URLs, fragments, and non-HTTP schemes are left alone.
func isRelative(val string) bool {
	lower := strings.ToLower(val)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return false
	case strings.HasPrefix(val, "//"):
		return false
	case strings.HasPrefix(val, "#"):
		return false
	case strings.Contains(lower, ":"): // mailto:, data:, javascript:, tel:
		return false
	}
	return true
}
