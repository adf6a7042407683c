package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/mix"
	"github.com/jakoblorz/phxforge/internal/update"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, runner mix.Runner, releases update.ReleaseClient) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phxforge",
		Short: "Scaffold Phoenix projects with optional feature modules",
		Long: `phxforge generates a Phoenix base project and layers optional feature
modules onto it: authentication, background jobs, pagination, mailing and more.

Module setup is idempotent — re-running against an existing project never
duplicates dependencies or patches.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewNewCommand(fs, runner))
	rootCmd.AddCommand(NewModulesCommand())
	rootCmd.AddCommand(NewStatusCommand(fs))
	rootCmd.AddCommand(NewDoctorCommand(fs))
	rootCmd.AddCommand(NewVersionCommand(releases))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	runner := mix.NewOSRunner()

	var releases update.ReleaseClient
	if client, err := update.NewClientFromEnv(); err == nil {
		releases = client
	} else {
		// Release lookups on public repos work unauthenticated.
		releases = update.NewClientWithoutAuth()
	}

	rootCmd := NewRootCommand(fs, runner, releases)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
