package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/mix"
	"github.com/jakoblorz/phxforge/internal/scaffold"
)

// newTestRunner returns a mock runner that materializes a realistic generated
// tree into fs whenever phx.new runs, like the real task would.
func newTestRunner(fs *filesystem.MockFileSystem) *mix.MockRunner {
	runner := mix.NewMockRunner()
	runner.OnPhxNew = func(parentDir, appName, database string) {
		scaffold.NewProjectBuilder(parentDir, appName, database).BuildInto(fs)
	}
	return runner
}

func runNewCommand(t *testing.T, fs *filesystem.MockFileSystem, runner *mix.MockRunner, args ...string) (string, error) {
	t.Helper()

	cmd := NewNewCommand(fs, runner)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewCommand_NonInteractive(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	runner := newTestRunner(fs)

	output, err := runNewCommand(t, fs, runner,
		"my_shop", "--yes", "--database", "postgres", "--modules", "auth,httpoison", "--dir", "work")
	require.NoError(t, err)

	require.Contains(t, output, "✓ auth")
	require.Contains(t, output, "✓ httpoison")
	require.Contains(t, output, "ready at "+filepath.Join("work", "my_shop"))

	// Base generation ran once with the requested database
	calls := runner.CallsFor("phx.new")
	require.Len(t, calls, 1)
	require.Equal(t, "work", calls[0].Dir)
	require.Equal(t, []string{"my_shop", "--database", "postgres"}, calls[0].Args)

	// Module setup touched the generated tree
	require.True(t, fs.Exists(filepath.Join("work", "my_shop", "lib", "my_shop", "guardian.ex")))
	require.True(t, fs.Exists(filepath.Join("work", "my_shop", "docs", "modules", "auth.md")))
	require.True(t, fs.Exists(filepath.Join("work", "my_shop", "docs", "modules", "httpoison.md")))
}

func TestNewCommand_DefaultsDatabaseToPostgres(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	runner := newTestRunner(fs)

	_, err := runNewCommand(t, fs, runner, "my_shop", "--yes")
	require.NoError(t, err)

	calls := runner.CallsFor("phx.new")
	require.Len(t, calls, 1)
	require.Equal(t, []string{"my_shop", "--database", "postgres"}, calls[0].Args)
}

func TestNewCommand_ContinuesPastModuleFailure(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	runner := newTestRunner(fs)
	runner.FailTask("deps.get", errors.New("network down"))

	// oban runs deps.get during setup and fails; admin runs after it
	output, err := runNewCommand(t, fs, runner,
		"my_shop", "--yes", "--modules", "oban,admin", "--dir", "work")

	// A module failure is reported, not escalated: the command still exits 0
	require.NoError(t, err)
	require.Contains(t, output, "⚠️  oban failed")
	require.Contains(t, output, "✓ admin")
	require.Contains(t, output, "some modules failed")
	require.True(t, fs.Exists(filepath.Join("work", "my_shop", "docs", "modules", "admin.md")))
}

func TestNewCommand_UnknownModuleKeyFailsBeforeGeneration(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	runner := newTestRunner(fs)

	_, err := runNewCommand(t, fs, runner, "my_shop", "--yes", "--modules", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope")
	require.Empty(t, runner.CallsFor("phx.new"))
}

func TestNewCommand_GenerationFailureIsFatal(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	runner := newTestRunner(fs)
	runner.FailTask("phx.new", errors.New("mix not installed"))

	_, err := runNewCommand(t, fs, runner, "my_shop", "--yes", "--modules", "auth")
	require.Error(t, err)
	require.Contains(t, err.Error(), "base project generation failed")
}

func TestNewCommand_RequiresNameWithYes(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	runner := newTestRunner(fs)

	_, err := runNewCommand(t, fs, runner, "--yes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "project name")
}

func TestNewCommand_RejectsInvalidName(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	runner := newTestRunner(fs)

	_, err := runNewCommand(t, fs, runner, "9lives", "--yes")
	require.Error(t, err)
	require.Empty(t, runner.CallsFor("phx.new"))
}
