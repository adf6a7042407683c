package doctor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/phxforge/internal/docs"
	"github.com/jakoblorz/phxforge/internal/filesystem"
	"github.com/jakoblorz/phxforge/internal/scaffold"
)

func checkByName(t *testing.T, checks []Check, name string) Check {
	t.Helper()
	for _, check := range checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q not found", name)
	return Check{}
}

func TestExamine_HealthyProject(t *testing.T) {
	builder := scaffold.NewProjectBuilder("/work", "my_shop", "postgres")
	fs := builder.Build()
	ctx := builder.Context()

	emitter := docs.NewEmitter(fs)
	require.NoError(t, emitter.Emit(ctx, "oban", "Background Jobs", "body"))

	checks, err := New(fs).Examine(ctx.RootPath)
	require.NoError(t, err)
	require.Len(t, checks, 4)

	for _, check := range checks {
		require.True(t, check.OK, "check %q failed: %s", check.Name, check.Detail)
	}

	require.Contains(t, checkByName(t, checks, "router marker").Detail, ":my_shop")
	require.Contains(t, checkByName(t, checks, "module docs").Detail, "oban")
}

func TestExamine_MissingDepsAnchor(t *testing.T) {
	builder := scaffold.NewProjectBuilder("/work", "my_shop", "postgres")
	fs := builder.Build()
	ctx := builder.Context()

	// Simulate a user who restructured their mix.exs.
	fs.AddFile(ctx.RootPath+"/mix.exs", []byte("defmodule MyShop.MixProject do\nend\n"))

	checks, err := New(fs).Examine(ctx.RootPath)
	require.NoError(t, err)

	check := checkByName(t, checks, "mix.exs deps anchor")
	require.False(t, check.OK)
	require.Contains(t, check.Detail, "deps anchor missing")
}

func TestExamine_RejectsRefactoredDepsList(t *testing.T) {
	builder := scaffold.NewProjectBuilder("/work", "my_shop", "postgres")
	fs := builder.Build()
	ctx := builder.Context()

	// "defp deps do" is present, but the list literal moved elsewhere, so
	// injection below the opening bracket would fail. The doctor must flag
	// exactly what the injector rejects.
	fs.AddFile(ctx.RootPath+"/mix.exs", []byte(
		"defmodule MyShop.MixProject do\n  defp deps do\n    deps_list()\n  end\nend\n"))

	checks, err := New(fs).Examine(ctx.RootPath)
	require.NoError(t, err)

	check := checkByName(t, checks, "mix.exs deps anchor")
	require.False(t, check.OK)
	require.Contains(t, check.Detail, "deps anchor missing")
}

func TestExamine_IgnoresVendoredRouters(t *testing.T) {
	builder := scaffold.NewProjectBuilder("/work", "my_shop", "postgres")
	fs := builder.Build()
	ctx := builder.Context()

	// Break the real router, then plant a healthy-looking router inside a
	// gitignored directory. Only the real one may be considered.
	fs.AddFile(ctx.RootPath+"/lib/my_shop_web/router.ex", []byte("defmodule Broken do\nend\n"))
	fs.AddFile(ctx.RootPath+"/lib/deps/phoenix/router.ex", []byte("use DemoWeb, :router\n"))
	fs.AddFile(ctx.RootPath+"/.gitignore", []byte("/lib/deps/\n"))

	checks, err := New(fs).Examine(ctx.RootPath)
	require.NoError(t, err)

	check := checkByName(t, checks, "router marker")
	require.False(t, check.OK)
	require.Contains(t, check.Detail, "router marker missing")
}

func TestExamine_MissingRoot(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	_, err := New(fs).Examine("/nope")
	require.Error(t, err)
}
