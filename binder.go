package sitebind

import "context"

// Binder renders the final ordered document collection for presentation:
// a cover page carrying the seed hostname and generation timestamp, a
// table of contents, and one section per document.
type Binder interface {
	Bind(ctx context.Context, session *Session, docs []*Document) error
}
