package fs_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/fs"
	"github.com/sitebind/sitebind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *sitebind.Session {
	return &sitebind.Session{
		ID:        "s1",
		SeedURL:   "https://example.com/docs",
		Hostname:  "example.com",
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestBinder_writes_cover_toc_and_sections_in_order(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := fs.NewBinder(dir, nil)
	session := testSession()

	docs := []*sitebind.Document{
		{SessionID: "s1", URL: "https://example.com/docs", Title: "Home", Content: "welcome", Status: sitebind.StatusOK, Position: 0},
		{SessionID: "s1", URL: "https://example.com/docs/install", Title: "Install", Content: "run the installer", Status: sitebind.StatusOK, Position: 1},
	}

	require.NoError(t, b.Bind(context.Background(), session, docs))

	data, err := os.ReadFile(b.Path(session))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "# example.com")
	assert.Contains(t, out, "Generated from <https://example.com/docs> on 2026-03-14T09:30:00Z.")
	assert.Contains(t, out, "1. [Home](#home)")
	assert.Contains(t, out, "2. [Install](#install)")
	assert.Less(t, strings.Index(out, "## Home"), strings.Index(out, "## Install"),
		"sections should follow document order")
}

func TestBinder_marks_failed_documents_instead_of_embedding_content(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := fs.NewBinder(dir, nil)
	session := testSession()

	docs := []*sitebind.Document{
		{SessionID: "s1", URL: "https://example.com/docs/broken", Title: "Broken", Status: sitebind.StatusError},
	}

	require.NoError(t, b.Bind(context.Background(), session, docs))

	data, err := os.ReadFile(b.Path(session))
	require.NoError(t, err)

	assert.Contains(t, string(data), "This page could not be retrieved.")
}

func TestBinder_converts_content_through_the_converter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	conv := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return "converted: " + html, nil
		},
	}
	b := fs.NewBinder(dir, conv)
	session := testSession()

	docs := []*sitebind.Document{
		{SessionID: "s1", URL: "https://example.com/docs", Title: "Home", Content: "<p>hi</p>", Status: sitebind.StatusOK},
	}

	require.NoError(t, b.Bind(context.Background(), session, docs))

	data, err := os.ReadFile(b.Path(session))
	require.NoError(t, err)
	assert.Contains(t, string(data), "converted: <p>hi</p>")
}

func TestBinder_includes_summaries_as_blockquotes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := fs.NewBinder(dir, nil)
	session := testSession()

	docs := []*sitebind.Document{
		{SessionID: "s1", URL: "https://example.com/docs", Title: "Home", Content: "body",
			Summary: "A page about things.", Status: sitebind.StatusOK},
	}

	require.NoError(t, b.Bind(context.Background(), session, docs))

	data, err := os.ReadFile(b.Path(session))
	require.NoError(t, err)
	assert.Contains(t, string(data), "> A page about things.")
}

func TestBinder_falls_back_to_the_URL_for_untitled_documents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := fs.NewBinder(dir, nil)
	session := testSession()

	docs := []*sitebind.Document{
		{SessionID: "s1", URL: "https://example.com/docs/x", Content: "body", Status: sitebind.StatusOK},
	}

	require.NoError(t, b.Bind(context.Background(), session, docs))

	data, err := os.ReadFile(b.Path(session))
	require.NoError(t, err)
	assert.Contains(t, string(data), "## https://example.com/docs/x")
}

func TestBinder_leaves_no_temporary_file_behind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := fs.NewBinder(dir, nil)
	session := testSession()

	require.NoError(t, b.Bind(context.Background(), session, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "example.com.md", entries[0].Name())
}

func TestBinder_rejects_invalid_sessions(t *testing.T) {
	t.Parallel()

	b := fs.NewBinder(t.TempDir(), nil)

	err := b.Bind(context.Background(), &sitebind.Session{}, nil)
	require.Error(t, err)
	assert.Equal(t, sitebind.EINVALID, sitebind.ErrorCode(err))
}
