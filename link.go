package sitebind

import (
	"net/url"
	"strings"
)

// PlaceholderLabel is used for discovered links whose anchor has no text.
const PlaceholderLabel = "(untitled)"

// SeedLabel is the sentinel label for the seed entry when the crawl
// never discovered a link pointing back at it.
const SeedLabel = "Home / Entry"

// DiscoveredLink represents a same-host navigation link found during
// discovery. Identity is Href after NormalizeURL; links are immutable once
// catalogued and only superseded by a re-scan.
type DiscoveredLink struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// LinkExtractor extracts deduplicated, same-host, absolute navigation links
// from an HTML document.
type LinkExtractor interface {
	// ExtractLinks parses html and returns discovered links in document
	// order. The baseURL is used to resolve relative hrefs and to filter
	// out cross-host targets. An empty result is not an error.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)
}

// NormalizeURL canonicalizes a URL for identity comparison: the fragment is
// stripped and a trailing slash is collapsed unless the path is the root.
// Normalization is idempotent. Unparseable input is returned unchanged.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	if u.Path != "" && u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	return u.String()
}

// SameHost reports whether two URLs share a hostname. Unparseable input
// never matches.
func SameHost(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Hostname() != "" && ua.Hostname() == ub.Hostname()
}

// Catalog is an insertion-ordered collection of discovered links,
// deduplicated by normalized href. The first-seen label wins; insertion
// order defines presentation order. Catalog is not safe for concurrent use;
// discovery owns it exclusively for the duration of a run.
type Catalog struct {
	links []DiscoveredLink
	index map[string]int
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add appends a link unless its normalized href is already catalogued.
// Returns true if the link was added.
func (c *Catalog) Add(link DiscoveredLink) bool {
	key := NormalizeURL(link.Href)
	if _, ok := c.index[key]; ok {
		return false
	}
	link.Href = key
	c.index[key] = len(c.links)
	c.links = append(c.links, link)
	return true
}

// Prepend inserts a link at the front of the catalog unless already present.
// Used to guarantee the seed URL leads the presentation order.
func (c *Catalog) Prepend(link DiscoveredLink) bool {
	key := NormalizeURL(link.Href)
	if _, ok := c.index[key]; ok {
		return false
	}
	link.Href = key
	c.links = append([]DiscoveredLink{link}, c.links...)
	for i, l := range c.links {
		c.index[NormalizeURL(l.Href)] = i
	}
	return true
}

// Contains reports whether the normalized href is catalogued.
func (c *Catalog) Contains(href string) bool {
	_, ok := c.index[NormalizeURL(href)]
	return ok
}

// Links returns the catalogued links in insertion order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Links() []DiscoveredLink {
	out := make([]DiscoveredLink, len(c.links))
	copy(out, c.links)
	return out
}

// Len returns the number of catalogued links.
func (c *Catalog) Len() int {
	return len(c.links)
}
