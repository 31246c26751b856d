package main

import (
	"fmt"

	"github.com/sitebind/sitebind"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	session, err := deps.Sessions.FindSessionByID(deps.Ctx, c.Session)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
		return err
	}

	docs, err := deps.Documents.FindDocumentsBySession(deps.Ctx, session.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: session %q has no documents\n", c.Session)
		return sitebind.Errorf(sitebind.ENOTFOUND, "session %q has no documents", c.Session)
	}

	fmt.Fprintf(deps.Stdout, "Documents for %s (%d total):\n\n", session.Hostname, len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.URL
		}
		marker := " "
		if doc.Status == sitebind.StatusError {
			marker = "!"
		}
		fmt.Fprintf(deps.Stdout, "  %s %d. %s\n       %s\n", marker, i+1, title, doc.URL)
	}

	return nil
}
