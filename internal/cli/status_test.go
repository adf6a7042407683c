package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/phxforge/internal/filesystem"
)

func runStatusCommand(t *testing.T, fs *filesystem.MockFileSystem, args ...string) (string, error) {
	t.Helper()

	cmd := NewStatusCommand(fs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestStatusCommand_ListsInstalledModules(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	docsDir := filepath.Join("work", "my_shop", "docs", "modules")
	fs.AddFile(filepath.Join(docsDir, "auth.md"), []byte("---\nkey: auth\ntitle: Authentication\n---\n\nAuth module.\n"))
	fs.AddFile(filepath.Join(docsDir, "oban.md"), []byte("---\nkey: oban\ntitle: Background Jobs\n---\n\nOban module.\n"))

	output, err := runStatusCommand(t, fs, filepath.Join("work", "my_shop"))
	require.NoError(t, err)
	require.Contains(t, output, "✓ auth")
	require.Contains(t, output, "Authentication")
	require.Contains(t, output, "✓ oban")
	require.Contains(t, output, "Background Jobs")
}

func TestStatusCommand_ReportsEmptyProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile(filepath.Join("work", "my_shop", "mix.exs"), []byte("defmodule MyShop.MixProject do\nend\n"))

	output, err := runStatusCommand(t, fs, filepath.Join("work", "my_shop"))
	require.NoError(t, err)
	require.Contains(t, output, "No modules installed")
}
