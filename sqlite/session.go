package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sitebind/sitebind"
)

// Compile-time interface verification.
var _ sitebind.SessionService = (*SessionService)(nil)

// SessionService implements sitebind.SessionService using SQLite.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// CreateSession creates a new session.
func (s *SessionService) CreateSession(ctx context.Context, session *sitebind.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	session.ID = uuid.New().String()
	session.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, seed_url, hostname, created_at)
		VALUES (?, ?, ?, ?)
	`, session.ID, session.SeedURL, session.Hostname,
		session.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSessionByID retrieves a session by ID.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*sitebind.Session, error) {
	var session sitebind.Session
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, hostname, created_at
		FROM sessions
		WHERE id = ?
	`, id).Scan(&session.ID, &session.SeedURL, &session.Hostname, &createdAt)

	if err == sql.ErrNoRows {
		return nil, sitebind.Errorf(sitebind.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}

	session.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// FindSessions retrieves all sessions, most recent first.
func (s *SessionService) FindSessions(ctx context.Context) ([]*sitebind.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed_url, hostname, created_at
		FROM sessions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*sitebind.Session
	for rows.Next() {
		var session sitebind.Session
		var createdAt string

		if err := rows.Scan(&session.ID, &session.SeedURL, &session.Hostname, &createdAt); err != nil {
			return nil, err
		}

		session.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}

// DeleteSession permanently removes a session and its documents.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitebind.Errorf(sitebind.ENOTFOUND, "session not found")
	}

	return nil
}
