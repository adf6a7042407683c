package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/mix"
	"github.com/jakoblorz/phxforge/internal/models"
	"github.com/jakoblorz/phxforge/internal/modules"
	"github.com/jakoblorz/phxforge/internal/orchestrator"
	"github.com/jakoblorz/phxforge/internal/scaffold"
	"github.com/jakoblorz/phxforge/internal/tui/create"
)

// NewCommand handles the new command
type NewCommand struct {
	fs     filesystem.FileSystem
	runner mix.Runner
}

// NewNewCommand creates a new 'new' command
func NewNewCommand(fs filesystem.FileSystem, runner mix.Runner) *cobra.Command {
	cmd := &NewCommand{fs: fs, runner: runner}

	cobraCmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Generate a Phoenix project and set up selected feature modules",
		Long: `Generates a fresh Phoenix project via 'mix phx.new' and runs the setup of
every selected feature module against it.

A failing base generation aborts the run. A failing module does not: remaining
modules still run and the failure is reported at the end.`,
		Example: `  # Interactive
  phxforge new

  # Non-interactive
  phxforge new my_shop --yes --database postgres --modules auth,oban`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("yes", false, "Skip all prompts; requires a project name argument")
	cobraCmd.Flags().StringP("database", "d", "", "Database flavor: postgres, mysql or sqlite3 (default postgres)")
	cobraCmd.Flags().StringSliceP("modules", "m", nil, "Module keys to set up (see 'phxforge modules')")
	cobraCmd.Flags().String("dir", ".", "Parent directory for the generated project")

	return cobraCmd
}

// Run executes the new command
func (c *NewCommand) Run(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	database, _ := cmd.Flags().GetString("database")
	moduleKeys, _ := cmd.Flags().GetStringSlice("modules")
	parentDir, _ := cmd.Flags().GetString("dir")

	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	if yes {
		if name == "" {
			return fmt.Errorf("a project name argument is required with --yes")
		}
		if err := models.ValidateProjectName(name); err != nil {
			return err
		}
		if database == "" {
			database = "postgres"
		}
	} else {
		flow := create.NewFlow(name)
		result, err := flow.Run()
		if err != nil {
			return fmt.Errorf("prompt flow failed: %w", err)
		}
		if result == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		name = result.ProjectName
		database = result.Database
		moduleKeys = result.ModuleKeys
	}

	// Resolve the selection up front so an unknown key fails before any
	// subprocess runs.
	selection, err := modules.Select(moduleKeys)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔨 Generating %s (database: %s)\n", name, database)

	ctx, err := scaffold.Generate(c.runner, parentDir, name, database)
	if err != nil {
		return err
	}

	if len(selection) > 0 {
		fmt.Fprintf(out, "📦 Setting up %d module(s)\n\n", len(selection))
	}

	deps := modules.NewDeps(c.fs, c.runner)
	outcomes := orchestrator.New(deps).Run(ctx, selection)
	orchestrator.Report(out, outcomes)

	if orchestrator.HasFailures(outcomes) {
		fmt.Fprintf(out, "\n⚠️  %s generated at %s, but some modules failed (see above). Re-running their setup is safe.\n", name, ctx.RootPath)
		return nil
	}

	fmt.Fprintf(out, "\n✓ %s ready at %s\n", name, ctx.RootPath)
	return nil
}
