package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/phxforge/internal/update"
)

// Version is set at build time via ldflags
var Version = "dev"

// VersionCommand handles the version command
type VersionCommand struct {
	releases update.ReleaseClient
}

// NewVersionCommand creates a new 'version' command
func NewVersionCommand(releases update.ReleaseClient) *cobra.Command {
	cmd := &VersionCommand{releases: releases}

	cobraCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for a newer release",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().Bool("skip-update-check", false, "Do not contact GitHub for the latest release")

	return cobraCmd
}

// Run executes the version command
func (c *VersionCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "phxforge %s\n", Version)

	skip, _ := cmd.Flags().GetBool("skip-update-check")
	if skip {
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Second)
	defer cancel()

	check, err := update.CheckLatest(ctx, c.releases, Version)
	if err != nil {
		// The update check is best-effort; a flaky network must not fail
		// the command.
		fmt.Fprintf(out, "⚠️  Could not check for updates: %v\n", err)
		return nil
	}

	if check.Outdated {
		fmt.Fprintf(out, "⚠️  A newer release is available: %s (you have %s)\n   %s\n",
			check.LatestVersion, check.CurrentVersion, check.URL)
	}

	return nil
}
