// Package bloom provides probabilistic membership tracking for the URLs
// visited or queued during a single crawl run.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenSet records which URLs a crawl run has already encountered. It may
// report a never-seen URL as seen (a false positive, at the configured
// rate) but never the reverse, so a URL is enqueued at most once.
type SeenSet struct {
	f *bloom.BloomFilter
}

// NewSeenSet creates a SeenSet sized for the expected number of URLs a
// run will encounter, at the given false positive rate.
func NewSeenSet(expectedURLs uint, falsePositiveRate float64) *SeenSet {
	return &SeenSet{
		f: bloom.NewWithEstimates(expectedURLs, falsePositiveRate),
	}
}

// Remember records the URL and reports whether it was newly seen.
// Remembering an already-seen URL returns false and leaves the set
// unchanged.
func (s *SeenSet) Remember(url string) bool {
	return !s.f.TestOrAddString(url)
}

// Seen reports whether the URL might have been remembered.
func (s *SeenSet) Seen(url string) bool {
	return s.f.TestString(url)
}

// Count returns the approximate number of remembered URLs.
func (s *SeenSet) Count() uint {
	return uint(s.f.ApproximatedSize())
}
