package mock

import "github.com/sitebind/sitebind"

var _ sitebind.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitebind.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitebind.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitebind.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ sitebind.RefRewriter = (*RefRewriter)(nil)

// RefRewriter is a mock implementation of sitebind.RefRewriter.
type RefRewriter struct {
	RewriteFn func(htmlFragment string, baseURL string) (string, error)
}

func (r *RefRewriter) Rewrite(htmlFragment string, baseURL string) (string, error) {
	return r.RewriteFn(htmlFragment, baseURL)
}
