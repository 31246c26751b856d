// Package fs renders ingested documents into a markdown binder on disk.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sitebind/sitebind"
)

// Ensure Binder implements sitebind.Binder at compile time.
var _ sitebind.Binder = (*Binder)(nil)

// Binder writes a session's documents as a single markdown file with a
// cover page, a table of contents, and one section per document. The file
// is written to a temporary path and renamed into place, so readers never
// observe a partially written binder.
type Binder struct {
	baseDir string
	conv    sitebind.Converter
}

// NewBinder creates a Binder writing into baseDir. If conv is non-nil,
// document content is converted from HTML to markdown; otherwise it is
// embedded as-is.
func NewBinder(baseDir string, conv sitebind.Converter) *Binder {
	return &Binder{baseDir: baseDir, conv: conv}
}

// Path returns the binder file path for a session.
func (b *Binder) Path(session *sitebind.Session) string {
	return filepath.Join(b.baseDir, session.Hostname+".md")
}

// Bind renders the documents and writes the binder file atomically.
func (b *Binder) Bind(ctx context.Context, session *sitebind.Session, docs []*sitebind.Document) error {
	if err := session.Validate(); err != nil {
		return err
	}

	var sb strings.Builder
	b.writeCover(&sb, session)
	b.writeTOC(&sb, docs)
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.writeSection(&sb, i, doc); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(b.baseDir, 0755); err != nil {
		return err
	}

	final := b.Path(session)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, final)
}

func (b *Binder) writeCover(sb *strings.Builder, session *sitebind.Session) {
	fmt.Fprintf(sb, "# %s\n\n", session.Hostname)
	fmt.Fprintf(sb, "Generated from <%s> on %s.\n\n", session.SeedURL,
		session.CreatedAt.UTC().Format(time.RFC3339))
}

func (b *Binder) writeTOC(sb *strings.Builder, docs []*sitebind.Document) {
	sb.WriteString("## Contents\n\n")
	for i, doc := range docs {
		fmt.Fprintf(sb, "%d. [%s](#%s)\n", i+1, sectionTitle(doc), anchor(doc))
	}
	sb.WriteString("\n")
}

func (b *Binder) writeSection(sb *strings.Builder, i int, doc *sitebind.Document) error {
	fmt.Fprintf(sb, "## %s\n\n", sectionTitle(doc))
	fmt.Fprintf(sb, "Source: <%s>\n\n", doc.URL)

	if doc.Status == sitebind.StatusError {
		sb.WriteString("> This page could not be retrieved.\n\n")
		return nil
	}

	if doc.Summary != "" {
		fmt.Fprintf(sb, "> %s\n\n", strings.ReplaceAll(doc.Summary, "\n", "\n> "))
	}

	content := doc.Content
	if b.conv != nil && content != "" {
		converted, err := b.conv.Convert(content)
		if err != nil {
			return fmt.Errorf("convert %s: %w", doc.URL, err)
		}
		content = converted
	}
	sb.WriteString(strings.TrimSpace(content))
	sb.WriteString("\n\n")
	return nil
}

// sectionTitle falls back to the document URL when the title is empty.
func sectionTitle(doc *sitebind.Document) string {
	if doc.Title != "" {
		return doc.Title
	}
	return doc.URL
}

// anchor builds a GitHub-style heading anchor for the TOC.
func anchor(doc *sitebind.Document) string {
	title := strings.ToLower(sectionTitle(doc))
	var out strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out.WriteRune(r)
		case r == ' ' || r == '-':
			out.WriteByte('-')
		}
	}
	return out.String()
}
