package mock

import (
	"context"

	"github.com/sitebind/sitebind"
)

var _ sitebind.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of sitebind.SessionService.
type SessionService struct {
	CreateSessionFn   func(ctx context.Context, session *sitebind.Session) error
	FindSessionByIDFn func(ctx context.Context, id string) (*sitebind.Session, error)
	FindSessionsFn    func(ctx context.Context) ([]*sitebind.Session, error)
	DeleteSessionFn   func(ctx context.Context, id string) error
}

func (s *SessionService) CreateSession(ctx context.Context, session *sitebind.Session) error {
	return s.CreateSessionFn(ctx, session)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*sitebind.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) FindSessions(ctx context.Context) ([]*sitebind.Session, error) {
	return s.FindSessionsFn(ctx)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.DeleteSessionFn(ctx, id)
}
