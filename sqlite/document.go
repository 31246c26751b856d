package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitebind/sitebind"
)

// Compile-time interface verification.
var _ sitebind.DocumentService = (*DocumentService)(nil)

// DocumentService implements sitebind.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document. The ingestion pipeline assigns ID,
// content hash, and fetch time; missing values are filled in here so the
// service also works standalone.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *sitebind.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}
	if doc.Status == "" {
		doc.Status = sitebind.StatusOK
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, session_id, url, title, content, content_hash, status, summary, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SessionID, doc.URL, doc.Title, doc.Content, doc.ContentHash,
		string(doc.Status), doc.Summary, doc.Position, doc.FetchedAt.Format(time.RFC3339))

	return err
}

// UpdateSummary sets the summary of an existing document.
func (s *DocumentService) UpdateSummary(ctx context.Context, id string, summary string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE documents SET summary = ? WHERE id = ?
	`, summary, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitebind.Errorf(sitebind.ENOTFOUND, "document not found")
	}

	return nil
}

// FindDocumentsBySession retrieves a session's documents ordered by position.
func (s *DocumentService) FindDocumentsBySession(ctx context.Context, sessionID string) ([]*sitebind.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, url, title, content, content_hash, status, summary, position, fetched_at
		FROM documents
		WHERE session_id = ?
		ORDER BY position ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*sitebind.Document
	for rows.Next() {
		var doc sitebind.Document
		var status, fetchedAt string

		if err := rows.Scan(&doc.ID, &doc.SessionID, &doc.URL, &doc.Title, &doc.Content,
			&doc.ContentHash, &status, &doc.Summary, &doc.Position, &fetchedAt); err != nil {
			return nil, err
		}
		doc.Status = sitebind.DocumentStatus(status)

		doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocumentsBySession removes all documents for a session.
func (s *DocumentService) DeleteDocumentsBySession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE session_id = ?", sessionID)
	return err
}
