package main

import (
	"fmt"

	"github.com/sitebind/sitebind"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
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

	if err := deps.Binder.Bind(deps.Ctx, session, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%d documents)\n", deps.Binder.Path(session), len(docs))
	return nil
}
