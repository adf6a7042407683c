package scaffold

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/phxforge/internal/mix"
)

func TestGenerate(t *testing.T) {
	runner := mix.NewMockRunner()

	ctx, err := Generate(runner, "work", "My Shop", "postgres")
	require.NoError(t, err)

	require.Equal(t, "My Shop", ctx.Name)
	require.Equal(t, "my_shop", ctx.AppName)
	require.Equal(t, "MyShop", ctx.AppModule)
	require.Equal(t, "postgres", ctx.Database)
	require.Equal(t, filepath.Join("work", "my_shop"), ctx.RootPath)

	calls := runner.CallsFor("phx.new")
	require.Len(t, calls, 1)
	require.Equal(t, "work", calls[0].Dir)
	require.Equal(t, []string{"my_shop", "--database", "postgres"}, calls[0].Args)
}

func TestGenerate_InvalidNameRunsNothing(t *testing.T) {
	runner := mix.NewMockRunner()

	_, err := Generate(runner, "work", "9lives", "postgres")
	require.Error(t, err)
	require.Empty(t, runner.Calls)
}

func TestGenerate_GeneratorFailureIsFatal(t *testing.T) {
	runner := mix.NewMockRunner()
	runner.FailTask("phx.new", errors.New("** (Mix) The task \"phx.new\" could not be found"))

	_, err := Generate(runner, "work", "my_shop", "postgres")
	require.Error(t, err)
	require.Contains(t, err.Error(), "base project generation failed")
}
