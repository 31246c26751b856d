package crawl

import (
	"sync"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/bloom"
)

// Frontier is an in-memory FIFO URL frontier with Bloom filter deduplication.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.SeenSet
	queue []sitebind.DiscoveredLink
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewSeenSet(n, fpRate),
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen.
// URLs are normalized before deduplication, so URLs differing only by
// fragment or trailing slash are considered duplicates.
func (f *Frontier) Push(link sitebind.DiscoveredLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := sitebind.NormalizeURL(link.Href)
	if !f.seen.Remember(url) {
		return false
	}

	link.Href = url
	f.queue = append(f.queue, link)
	return true
}

// Pop returns the next link in first-in-first-out order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (sitebind.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return sitebind.DiscoveredLink{}, false
	}
	link := f.queue[0]
	f.queue = f.queue[1:]
	return link, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// URLs are normalized before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Seen(sitebind.NormalizeURL(rawURL))
}
