package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/phxforge/internal/modules"
)

// ModulesCommand handles the modules command
type ModulesCommand struct{}

// NewModulesCommand creates a new 'modules' command
func NewModulesCommand() *cobra.Command {
	cmd := &ModulesCommand{}

	return &cobra.Command{
		Use:   "modules",
		Short: "List the available feature modules",
		Long: `Lists every feature module this tool can set up, in the order they run.
Pass the keys to 'phxforge new --modules'.`,
		RunE: cmd.Run,
	}
}

// Run executes the modules command
func (c *ModulesCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "📦 Available modules:")
	fmt.Fprintln(out)
	for _, desc := range modules.Registry() {
		fmt.Fprintf(out, "  %-12s %s\n", desc.Key, desc.Prompt)
	}

	return nil
}
