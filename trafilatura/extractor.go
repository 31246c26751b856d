// Package trafilatura provides an alternate content isolator built on
// go-trafilatura's readability heuristics. It is useful for sites whose
// markup defeats the selector-based isolator.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/sitebind/sitebind"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitebind.Extractor at compile time.
var _ sitebind.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content region.
func (e *Extractor) Extract(rawHTML string) (*sitebind.ExtractResult, error) {
	if rawHTML == "" {
		return nil, sitebind.Errorf(sitebind.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &sitebind.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
