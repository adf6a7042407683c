package modules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_StaticOrder(t *testing.T) {
	var keys []string
	for _, desc := range Registry() {
		keys = append(keys, desc.Key)
		require.NotEmpty(t, desc.Prompt, "module %s has no prompt", desc.Key)
		require.NotNil(t, desc.Setup, "module %s has no setup", desc.Key)
	}

	require.Equal(t, []string{"auth", "oban", "httpoison", "pagination", "mailer", "api_docs", "admin"}, keys)
}

func TestLookup(t *testing.T) {
	desc, ok := Lookup("oban")
	require.True(t, ok)
	require.Equal(t, "oban", desc.Key)

	_, ok = Lookup("nope")
	require.False(t, ok)
}

func TestSelect_PreservesRegistryOrder(t *testing.T) {
	// User picked admin first; execution order still follows the registry.
	selection, err := Select([]string{"admin", "auth", "httpoison"})
	require.NoError(t, err)

	var keys []string
	for _, desc := range selection {
		keys = append(keys, desc.Key)
	}
	require.Equal(t, []string{"auth", "httpoison", "admin"}, keys)
}

func TestSelect_UnknownKey(t *testing.T) {
	_, err := Select([]string{"auth", "blockchain"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown module "blockchain"`)
}

func TestSelect_Empty(t *testing.T) {
	selection, err := Select(nil)
	require.NoError(t, err)
	require.Empty(t, selection)
}
