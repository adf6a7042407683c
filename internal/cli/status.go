package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/phxforge/internal/docs"
	"github.com/jakoblorz/phxforge/internal/filesystem"
)

// StatusCommand handles the status command
type StatusCommand struct {
	fs filesystem.FileSystem
}

// NewStatusCommand creates a new 'status' command
func NewStatusCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &StatusCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "status [path]",
		Short: "Show which feature modules are installed in a project",
		Long: `Reads the module documents under docs/modules/ of a generated project and
lists the modules whose setup has run there. Defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the status command
func (c *StatusCommand) Run(cmd *cobra.Command, args []string) error {
	rootPath, err := c.resolveRoot(args)
	if err != nil {
		return err
	}

	installed, err := docs.ListInstalled(c.fs, rootPath)
	if err != nil {
		return fmt.Errorf("failed to determine installed modules: %w", err)
	}

	out := cmd.OutOrStdout()

	if len(installed) == 0 {
		fmt.Fprintf(out, "No modules installed in %s\n", rootPath)
		return nil
	}

	fmt.Fprintf(out, "📦 Installed modules in %s:\n\n", rootPath)
	for _, doc := range installed {
		fmt.Fprintf(out, "  ✓ %-12s %s\n", doc.Key, doc.Title)
	}

	return nil
}

func (c *StatusCommand) resolveRoot(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine current directory: %w", err)
	}
	return cwd, nil
}
