package main

import (
	"fmt"
	"time"

	"github.com/sitebind/sitebind"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	sessions, err := deps.Sessions.FindSessions(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(deps.Stdout, "No sessions found. Use 'sitebind bind' to create one.")
		return nil
	}

	for _, s := range sessions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			s.ID, s.Hostname, s.SeedURL, s.CreatedAt.Format(time.RFC3339))
	}

	return nil
}
