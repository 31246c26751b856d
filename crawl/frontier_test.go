package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	link := sitebind.DiscoveredLink{Href: "https://example.com/docs/page1"}

	ok := f.Push(link)
	assert.True(t, ok, "first push should succeed")

	ok = f.Push(link)
	assert.False(t, ok, "duplicate URL should be rejected")
}

func TestFrontier_Push_deduplicates_normalized_variants(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	ok := f.Push(sitebind.DiscoveredLink{Href: "https://example.com/docs/page"})
	assert.True(t, ok)

	// Fragment and trailing slash variants are the same URL
	ok = f.Push(sitebind.DiscoveredLink{Href: "https://example.com/docs/page#section"})
	assert.False(t, ok, "fragment variant should be rejected")

	ok = f.Push(sitebind.DiscoveredLink{Href: "https://example.com/docs/page/"})
	assert.False(t, ok, "trailing slash variant should be rejected")
}

func TestFrontier_Pop_returns_links_in_FIFO_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	f.Push(sitebind.DiscoveredLink{Href: "https://example.com/a"})
	f.Push(sitebind.DiscoveredLink{Href: "https://example.com/b"})
	f.Push(sitebind.DiscoveredLink{Href: "https://example.com/c"})

	link, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a", link.Href)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/b", link.Href)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/c", link.Href)

	_, ok = f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.Equal(t, 0, f.Len())

	f.Push(sitebind.DiscoveredLink{Href: "https://example.com/a"})
	f.Push(sitebind.DiscoveredLink{Href: "https://example.com/b"})
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_Seen_reports_queued_and_popped_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.False(t, f.Seen("https://example.com/a"))

	f.Push(sitebind.DiscoveredLink{Href: "https://example.com/a"})
	assert.True(t, f.Seen("https://example.com/a"))
	assert.True(t, f.Seen("https://example.com/a#top"), "fragment variant counts as seen")

	f.Pop()
	assert.True(t, f.Seen("https://example.com/a"), "popped URL stays seen")
}

func TestFrontier_is_safe_for_concurrent_use(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(10000, 0.01)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Push(sitebind.DiscoveredLink{Href: fmt.Sprintf("https://example.com/%d/%d", n, j)})
				f.Pop()
			}
		}(i)
	}
	wg.Wait()
}
