package sitebind

import (
	"context"
	"time"
)

// DocumentStatus marks a document as a successful or failed ingestion.
type DocumentStatus string

// Document statuses.
const (
	StatusOK    DocumentStatus = "ok"
	StatusError DocumentStatus = "error"
)

// Document represents one ingested page of the aggregated set.
// Summary is the only field mutated after creation; it is filled in by the
// Summarizer collaborator. A document's lifetime ends when its session is
// discarded or a new ingestion run replaces the collection.
type Document struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"sessionId"`
	URL         string         `json:"url"`
	Title       string         `json:"title"`
	Content     string         `json:"content"` // normalized HTML
	ContentHash string         `json:"contentHash"`
	Status      DocumentStatus `json:"status"`
	Summary     string         `json:"summary,omitempty"`
	Position    int            `json:"position"`
	FetchedAt   time.Time      `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SessionID == "" {
		return Errorf(EINVALID, "document session ID required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// DocumentService persists documents for a session.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// UpdateSummary sets the summary of an existing document.
	// Returns ENOTFOUND if the document does not exist.
	UpdateSummary(ctx context.Context, id string, summary string) error

	// FindDocumentsBySession retrieves a session's documents ordered by
	// position.
	FindDocumentsBySession(ctx context.Context, sessionID string) ([]*Document, error)

	// DeleteDocumentsBySession removes all documents for a session.
	DeleteDocumentsBySession(ctx context.Context, sessionID string) error
}
