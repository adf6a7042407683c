package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/scaffold"
)

func runDoctorCommand(t *testing.T, fs *filesystem.MockFileSystem, args ...string) (string, error) {
	t.Helper()

	cmd := NewDoctorCommand(fs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDoctorCommand_HealthyProject(t *testing.T) {
	builder := scaffold.NewProjectBuilder("work", "my_shop", "postgres")
	fs := builder.Build()

	output, err := runDoctorCommand(t, fs, builder.Context().RootPath)
	require.NoError(t, err)
	require.Contains(t, output, "All checks passed")
}

func TestDoctorCommand_BrokenManifest(t *testing.T) {
	builder := scaffold.NewProjectBuilder("work", "my_shop", "postgres")
	fs := builder.Build()

	// Simulate a user having refactored the deps function away
	root := builder.Context().RootPath
	fs.AddFile(filepath.Join(root, "mix.exs"), []byte("defmodule MyShop.MixProject do\nend\n"))

	output, err := runDoctorCommand(t, fs, root)
	require.Error(t, err)
	require.Contains(t, err.Error(), "check(s) failed")
	require.Contains(t, output, "❌")
}

func TestDoctorCommand_MissingProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	_, err := runDoctorCommand(t, fs, filepath.Join("work", "nowhere"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}
