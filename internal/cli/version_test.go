package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/phxforge/internal/update"
)

func runVersionCommand(t *testing.T, client update.ReleaseClient, args ...string) (string, error) {
	t.Helper()

	cmd := NewVersionCommand(client)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand_PrintsVersion(t *testing.T) {
	client := update.NewMockClient()
	client.SetLatestRelease("jakoblorz", "phxforge", &update.Release{
		TagName: "v0.1.0",
		HTMLURL: "https://github.com/jakoblorz/phxforge/releases/tag/v0.1.0",
	})

	output, err := runVersionCommand(t, client)
	require.NoError(t, err)
	require.Contains(t, output, "phxforge dev")
	// dev builds are never reported as outdated
	require.NotContains(t, output, "newer release")
}

func TestVersionCommand_ReportsNewerRelease(t *testing.T) {
	original := Version
	Version = "0.1.0"
	defer func() { Version = original }()

	client := update.NewMockClient()
	client.SetLatestRelease("jakoblorz", "phxforge", &update.Release{
		TagName: "v0.2.0",
		HTMLURL: "https://github.com/jakoblorz/phxforge/releases/tag/v0.2.0",
	})

	output, err := runVersionCommand(t, client)
	require.NoError(t, err)
	require.Contains(t, output, "newer release is available: 0.2.0")
	require.Contains(t, output, "releases/tag/v0.2.0")
}

func TestVersionCommand_SurvivesFailedCheck(t *testing.T) {
	client := update.NewMockClient() // no release configured

	output, err := runVersionCommand(t, client, "--skip-update-check")
	require.NoError(t, err)
	require.Contains(t, output, "phxforge dev")

	output, err = runVersionCommand(t, client)
	require.NoError(t, err)
	require.Contains(t, output, "Could not check for updates")
}
