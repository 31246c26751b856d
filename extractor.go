package sitebind

// ExtractResult holds the isolated content of an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the main content region with chrome (nav, header,
	// footer, sidebar) and script/style/iframe/noscript nodes removed.
	ContentHTML string
}

// Extractor isolates the main content region of an HTML page.
//
// Extract is best-effort and total: malformed input yields the original
// markup rather than an error wherever recovery is possible.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// RefRewriter rewrites embedded references so an extracted fragment is
// self-contained.
type RefRewriter interface {
	// Rewrite resolves root-relative and document-relative src/href
	// attribute values against baseURL. Absolute and protocol-qualified
	// values pass through unchanged.
	Rewrite(htmlFragment string, baseURL string) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. from an Extractor) into Markdown.
	Convert(html string) (string, error)
}
