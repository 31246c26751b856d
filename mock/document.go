package mock

import (
	"context"

	"github.com/sitebind/sitebind"
)

var _ sitebind.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of sitebind.DocumentService.
type DocumentService struct {
	CreateDocumentFn           func(ctx context.Context, doc *sitebind.Document) error
	UpdateSummaryFn            func(ctx context.Context, id string, summary string) error
	FindDocumentsBySessionFn   func(ctx context.Context, sessionID string) ([]*sitebind.Document, error)
	DeleteDocumentsBySessionFn func(ctx context.Context, sessionID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *sitebind.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) UpdateSummary(ctx context.Context, id string, summary string) error {
	return s.UpdateSummaryFn(ctx, id, summary)
}

func (s *DocumentService) FindDocumentsBySession(ctx context.Context, sessionID string) ([]*sitebind.Document, error) {
	return s.FindDocumentsBySessionFn(ctx, sessionID)
}

func (s *DocumentService) DeleteDocumentsBySession(ctx context.Context, sessionID string) error {
	return s.DeleteDocumentsBySessionFn(ctx, sessionID)
}
