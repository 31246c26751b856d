package sqlite_test

import (
	"context"
	"testing"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSession(t *testing.T, db *sqlite.DB) *sitebind.Session {
	t.Helper()
	svc := sqlite.NewSessionService(db)
	session := &sitebind.Session{
		SeedURL:  "https://example.com/docs",
		Hostname: "example.com",
	}
	require.NoError(t, svc.CreateSession(context.Background(), session))
	return session
}

func TestSessionService_CreateSession(t *testing.T) {
	t.Parallel()

	t.Run("creates session with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		session := createTestSession(t, db)

		assert.NotEmpty(t, session.ID, "ID should be generated")
		assert.False(t, session.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		err := svc.CreateSession(context.Background(), &sitebind.Session{})
		require.Error(t, err)
		assert.Equal(t, sitebind.EINVALID, sitebind.ErrorCode(err))
	})
}

func TestSessionService_FindSessionByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		created := createTestSession(t, db)
		svc := sqlite.NewSessionService(db)

		found, err := svc.FindSessionByID(context.Background(), created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "https://example.com/docs", found.SeedURL)
		assert.Equal(t, "example.com", found.Hostname)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		_, err := svc.FindSessionByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, sitebind.ENOTFOUND, sitebind.ErrorCode(err))
	})
}

func TestSessionService_FindSessions_returns_most_recent_first(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewSessionService(db)
	ctx := context.Background()

	first := &sitebind.Session{SeedURL: "https://a.example.com", Hostname: "a.example.com"}
	require.NoError(t, svc.CreateSession(ctx, first))
	second := &sitebind.Session{SeedURL: "https://b.example.com", Hostname: "b.example.com"}
	require.NoError(t, svc.CreateSession(ctx, second))

	sessions, err := svc.FindSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
}

func TestSessionService_DeleteSession(t *testing.T) {
	t.Parallel()

	t.Run("removes the session and cascades to documents", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		session := createTestSession(t, db)
		svc := sqlite.NewSessionService(db)
		docs := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, docs.CreateDocument(ctx, &sitebind.Document{
			SessionID: session.ID,
			URL:       "https://example.com/docs/a",
		}))

		require.NoError(t, svc.DeleteSession(ctx, session.ID))

		_, err := svc.FindSessionByID(ctx, session.ID)
		assert.Equal(t, sitebind.ENOTFOUND, sitebind.ErrorCode(err))

		remaining, err := docs.FindDocumentsBySession(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		err := svc.DeleteSession(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, sitebind.ENOTFOUND, sitebind.ErrorCode(err))
	})
}
