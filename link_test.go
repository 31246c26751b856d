package sitebind_test

import (
	"testing"

	"github.com/sitebind/sitebind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips fragment", "https://x.com/docs#intro", "https://x.com/docs"},
		{"collapses trailing slash", "https://x.com/docs/", "https://x.com/docs"},
		{"keeps root slash", "https://x.com/", "https://x.com/"},
		{"keeps bare host", "https://x.com", "https://x.com"},
		{"keeps query", "https://x.com/docs?v=2", "https://x.com/docs?v=2"},
		{"fragment and slash together", "https://x.com/docs/#top", "https://x.com/docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sitebind.NormalizeURL(tt.in))
		})
	}
}

func TestNormalizeURL_is_idempotent(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://x.com/docs/#frag",
		"https://x.com/",
		"https://x.com/a/b/c/",
		"https://x.com/a?q=1#f",
	}
	for _, u := range urls {
		once := sitebind.NormalizeURL(u)
		assert.Equal(t, once, sitebind.NormalizeURL(once), "normalize(normalize(u)) must equal normalize(u) for %s", u)
	}
}

func TestSameHost(t *testing.T) {
	t.Parallel()

	assert.True(t, sitebind.SameHost("https://docs.example.com/a", "https://docs.example.com/b"))
	assert.False(t, sitebind.SameHost("https://docs.example.com/a", "https://example.com/a"))
	assert.False(t, sitebind.SameHost("://bad", "https://example.com"))
}

func TestCatalog_Add_deduplicates_by_normalized_href(t *testing.T) {
	t.Parallel()

	c := sitebind.NewCatalog()

	ok := c.Add(sitebind.DiscoveredLink{Href: "https://x.com/docs/", Text: "Docs"})
	require.True(t, ok)

	// Same page, different surface forms.
	assert.False(t, c.Add(sitebind.DiscoveredLink{Href: "https://x.com/docs", Text: "Documentation"}))
	assert.False(t, c.Add(sitebind.DiscoveredLink{Href: "https://x.com/docs#intro", Text: "Intro"}))

	require.Equal(t, 1, c.Len())
	// First-seen label wins.
	assert.Equal(t, "Docs", c.Links()[0].Text)
	assert.Equal(t, "https://x.com/docs", c.Links()[0].Href)
}

func TestCatalog_preserves_insertion_order(t *testing.T) {
	t.Parallel()

	c := sitebind.NewCatalog()
	c.Add(sitebind.DiscoveredLink{Href: "https://x.com/b"})
	c.Add(sitebind.DiscoveredLink{Href: "https://x.com/a"})
	c.Add(sitebind.DiscoveredLink{Href: "https://x.com/c"})

	links := c.Links()
	require.Len(t, links, 3)
	assert.Equal(t, "https://x.com/b", links[0].Href)
	assert.Equal(t, "https://x.com/a", links[1].Href)
	assert.Equal(t, "https://x.com/c", links[2].Href)
}

func TestCatalog_Prepend_puts_seed_first(t *testing.T) {
	t.Parallel()

	c := sitebind.NewCatalog()
	c.Add(sitebind.DiscoveredLink{Href: "https://x.com/a"})
	c.Add(sitebind.DiscoveredLink{Href: "https://x.com/b"})

	ok := c.Prepend(sitebind.DiscoveredLink{Href: "https://x.com/", Text: sitebind.SeedLabel})
	require.True(t, ok)

	links := c.Links()
	require.Len(t, links, 3)
	assert.Equal(t, "https://x.com/", links[0].Href)
	assert.Equal(t, sitebind.SeedLabel, links[0].Text)
	assert.True(t, c.Contains("https://x.com/a"))

	// Prepend is a no-op when the seed is already catalogued.
	assert.False(t, c.Prepend(sitebind.DiscoveredLink{Href: "https://x.com/a"}))
	assert.Equal(t, 3, c.Len())
}
