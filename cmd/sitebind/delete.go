package main

import (
	"fmt"

	"github.com/sitebind/sitebind"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitebind.Errorf(sitebind.EINVALID, "use --force to confirm deletion")
	}

	session, err := deps.Sessions.FindSessionByID(deps.Ctx, c.Session)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
		return err
	}

	if err := deps.Sessions.DeleteSession(deps.Ctx, session.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted session %s (%s)\n", session.ID, session.Hostname)
	return nil
}
