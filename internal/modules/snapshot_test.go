package modules

import (
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestManifestSnapshots(t *testing.T) {
	t.Run("snapshot manifest after full setup", func(t *testing.T) {
		fs, _, deps, ctx := newTestProject(t)

		for _, desc := range Registry() {
			require.NoError(t, desc.Setup(deps, ctx))
		}

		manifest, err := fs.ReadFile(filepath.Join(ctx.RootPath, "mix.exs"))
		require.NoError(t, err)
		snaps.MatchSnapshot(t, string(manifest))
	})

	t.Run("snapshot manifest is stable across reruns", func(t *testing.T) {
		fs, _, deps, ctx := newTestProject(t)

		for round := 0; round < 2; round++ {
			for _, desc := range Registry() {
				require.NoError(t, desc.Setup(deps, ctx))
			}
		}

		manifest, err := fs.ReadFile(filepath.Join(ctx.RootPath, "mix.exs"))
		require.NoError(t, err)
		snaps.MatchSnapshot(t, string(manifest))
	})
}
