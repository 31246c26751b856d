package sitebind

import (
	"context"
	"time"
)

// Session represents one crawl-and-ingest run against a seed URL.
// The generated binder's cover page carries the seed hostname and the
// session's creation timestamp.
type Session struct {
	ID        string    `json:"id"`
	SeedURL   string    `json:"seedUrl"`
	Hostname  string    `json:"hostname"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if s.SeedURL == "" {
		return Errorf(EINVALID, "session seed URL required")
	}
	if s.Hostname == "" {
		return Errorf(EINVALID, "session hostname required")
	}
	return nil
}

// SessionService persists sessions.
type SessionService interface {
	// CreateSession creates a new session.
	CreateSession(ctx context.Context, session *Session) error

	// FindSessionByID retrieves a session by ID.
	// Returns ENOTFOUND if the session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// FindSessions retrieves all sessions ordered by creation time.
	FindSessions(ctx context.Context) ([]*Session, error)

	// DeleteSession removes a session and all associated documents.
	// Returns ENOTFOUND if the session does not exist.
	DeleteSession(ctx context.Context, id string) error
}
