package cli

import (
	"maps"
	"path/filepath"
	"slices"
	"testing"

	"github.com/psviderski/blockctl/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(t *testing.T, contextName string, overrides config.Connection) *CLI {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := New(path, contextName, overrides)
	require.NoError(t, err)
	return c
}

func TestCLI_Connection(t *testing.T) {
	t.Parallel()

	t.Run("current context with overrides", func(t *testing.T) {
		t.Parallel()

		c := newTestCLI(t, "", config.Connection{Token: "flag-token"})
		require.NoError(t, c.AddContext(&config.Context{
			Name: "prod",
			Connection: config.Connection{
				Endpoint:   "https://volume.example.com/v3/project",
				Token:      "config-token",
				APIVersion: "3.10",
			},
		}))

		conn, err := c.Connection()
		require.NoError(t, err)
		assert.Equal(t, "https://volume.example.com/v3/project", conn.Endpoint)
		assert.Equal(t, "flag-token", conn.Token)
		assert.Equal(t, "3.10", conn.APIVersion)
	})

	t.Run("selected context", func(t *testing.T) {
		t.Parallel()

		c := newTestCLI(t, "dev", config.Connection{})
		require.NoError(t, c.AddContext(&config.Context{
			Name:       "prod",
			Connection: config.Connection{Endpoint: "https://prod.example.com/v3/p"},
		}))
		require.NoError(t, c.AddContext(&config.Context{
			Name:       "dev",
			Connection: config.Connection{Endpoint: "http://localhost:8776/v3/p"},
		}))

		conn, err := c.Connection()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8776/v3/p", conn.Endpoint)
	})

	t.Run("endpoint override without context", func(t *testing.T) {
		t.Parallel()

		c := newTestCLI(t, "", config.Connection{Endpoint: "http://localhost:8776/v3/p"})
		conn, err := c.Connection()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8776/v3/p", conn.Endpoint)
	})

	t.Run("no context and no endpoint", func(t *testing.T) {
		t.Parallel()

		c := newTestCLI(t, "", config.Connection{})
		_, err := c.Connection()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--endpoint")
	})

	t.Run("unknown selected context", func(t *testing.T) {
		t.Parallel()

		c := newTestCLI(t, "missing", config.Connection{Endpoint: "http://localhost:8776/v3/p"})
		_, err := c.Connection()
		assert.ErrorIs(t, err, config.ErrContextNotFound)
	})

	t.Run("invalid override", func(t *testing.T) {
		t.Parallel()

		c := newTestCLI(t, "", config.Connection{Endpoint: "ftp://localhost/v3/p"})
		_, err := c.Connection()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheme must be http or https")
	})
}

func TestCLI_ConnectVolumeService(t *testing.T) {
	t.Parallel()

	c := newTestCLI(t, "", config.Connection{Endpoint: "http://localhost:8776/v3/p", APIVersion: "3.x"})
	_, err := c.ConnectVolumeService()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to volume service 'http://localhost:8776/v3/p'")

	c = newTestCLI(t, "", config.Connection{Endpoint: "http://localhost:8776/v3/p", APIVersion: "3.10"})
	vc, err := c.ConnectVolumeService()
	require.NoError(t, err)
	assert.NoError(t, vc.Close())
}

func TestCLI_Contexts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := New(path, "", config.Connection{})
	require.NoError(t, err)

	require.NoError(t, c.AddContext(&config.Context{
		Name:       "prod",
		Connection: config.Connection{Endpoint: "https://prod.example.com/v3/p"},
	}))
	require.NoError(t, c.AddContext(&config.Context{
		Name:       "dev",
		Connection: config.Connection{Endpoint: "http://localhost:8776/v3/p"},
	}))
	assert.Equal(t, "prod", c.Config.CurrentContext)

	require.NoError(t, c.SetCurrentContext("dev"))
	assert.ErrorIs(t, c.SetCurrentContext("staging"), config.ErrContextNotFound)

	// Changes are persisted to the config file.
	reloaded, err := config.NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", reloaded.CurrentContext)
	assert.Len(t, reloaded.Contexts, 2)

	require.NoError(t, c.RemoveContext("dev"))
	assert.Empty(t, c.Config.CurrentContext)
	assert.ErrorIs(t, c.RemoveContext("dev"), config.ErrContextNotFound)

	reloaded, err = config.NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod"}, slices.Collect(maps.Keys(reloaded.Contexts)))
}
