package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_prefers_nav_dense_region(t *testing.T) {
	t.Parallel()

	// Nav carries more than five anchors; the content link must not appear.
	var nav strings.Builder
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&nav, `<a href="/docs/page%d">Page %d</a>`, i, i)
	}
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
<nav>%s</nav>
<main><a href="/docs/inline">Inline link</a></main>
</body>
</html>`, nav.String())

	e := goquery.NewLinkExtractor()
	links, err := e.ExtractLinks(html, "https://example.com/docs/")

	require.NoError(t, err)
	require.Len(t, links, 6)
	assert.Equal(t, "https://example.com/docs/page1", links[0].Href)
	for _, l := range links {
		assert.NotEqual(t, "https://example.com/docs/inline", l.Href)
	}
}

func TestLinkExtractor_falls_back_to_full_document(t *testing.T) {
	t.Parallel()

	// Nav has too few anchors to qualify as a navigation region.
	html := `<!DOCTYPE html>
<html>
<body>
<nav><a href="/a">A</a></nav>
<main><a href="/b">B</a><a href="/c">C</a></main>
</body>
</html>`

	e := goquery.NewLinkExtractor()
	links, err := e.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 3)
}

func TestLinkExtractor_skips_non_navigable_targets(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="#section">Fragment</a>
<a href="javascript:void(0)">Script</a>
<a href="mailto:docs@example.com">Mail</a>
<a href="tel:+123">Phone</a>
<a href="/docs/real">Real</a>
</body></html>`

	e := goquery.NewLinkExtractor()
	links, err := e.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/docs/real", links[0].Href)
}

func TestLinkExtractor_filters_cross_host_links(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/docs/a">Same host</a>
<a href="https://other.example.org/docs">Other host</a>
<a href="//cdn.example.net/lib.js">Protocol relative, other host</a>
</body></html>`

	e := goquery.NewLinkExtractor()
	links, err := e.ExtractLinks(html, "https://docs.example.com/")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://docs.example.com/docs/a", links[0].Href)
}

func TestLinkExtractor_resolves_relative_forms(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/rooted">Root relative</a>
<a href="sibling">Document relative</a>
<a href="//docs.example.com/protocol">Protocol relative</a>
</body></html>`

	e := goquery.NewLinkExtractor()
	links, err := e.ExtractLinks(html, "https://docs.example.com/guide/intro")

	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "https://docs.example.com/rooted", links[0].Href)
	assert.Equal(t, "https://docs.example.com/guide/sibling", links[1].Href)
	assert.Equal(t, "https://docs.example.com/protocol", links[2].Href)
}

func TestLinkExtractor_deduplicates_keeping_first_label(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/docs/">First label</a>
<a href="/docs">Second label</a>
<a href="/docs#frag">Third label</a>
</body></html>`

	e := goquery.NewLinkExtractor()
	links, err := e.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/docs", links[0].Href)
	assert.Equal(t, "First label", links[0].Text)
}

func TestLinkExtractor_collapses_label_whitespace(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/a">  Getting
	Started  </a>
<a href="/b"><img src="/icon.png"></a>
</body></html>`

	e := goquery.NewLinkExtractor()
	links, err := e.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Getting Started", links[0].Text)
	assert.Equal(t, sitebind.PlaceholderLabel, links[1].Text)
}

func TestLinkExtractor_returns_empty_when_no_anchors_qualify(t *testing.T) {
	t.Parallel()

	e := goquery.NewLinkExtractor()
	links, err := e.ExtractLinks("<html><body><p>No links here</p></body></html>", "https://example.com/")

	require.NoError(t, err)
	assert.Empty(t, links)
}
