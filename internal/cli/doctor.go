package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/phxforge/internal/doctor"
	"github.com/jakoblorz/phxforge/internal/filesystem"
)

// DoctorCommand handles the doctor command
type DoctorCommand struct {
	fs filesystem.FileSystem
}

// NewDoctorCommand creates a new 'doctor' command
func NewDoctorCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &DoctorCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "doctor [path]",
		Short: "Verify that a project still carries the anchors module setup needs",
		Long: `Checks the shared artifacts of a generated project (mix.exs, config files,
routers) for the anchors dependency injection and patching rely on. Run this
before re-running module setup against a project you have been editing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the doctor command
func (c *DoctorCommand) Run(cmd *cobra.Command, args []string) error {
	rootPath, err := c.resolveRoot(args)
	if err != nil {
		return err
	}

	checks, err := doctor.New(c.fs).Examine(rootPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0

	fmt.Fprintf(out, "🩺 Examining %s\n\n", rootPath)
	for _, check := range checks {
		marker := "✓"
		if !check.OK {
			marker = "❌"
			failed++
		}
		fmt.Fprintf(out, "  %s %-28s %s\n", marker, check.Name, check.Detail)
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}

	fmt.Fprintln(out, "\n✓ All checks passed")
	return nil
}

func (c *DoctorCommand) resolveRoot(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine current directory: %w", err)
	}
	return cwd, nil
}
