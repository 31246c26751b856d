package sitebind

import "context"

// Fetcher retrieves raw HTML markup from URLs.
//
// A fetch gateway composes several Fetcher strategies into a fallback
// chain; individual strategies may go direct, through a relay service, or
// through a rendering browser.
type Fetcher interface {
	// Fetch retrieves the markup for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
