package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Setenv("BLOCKCTL_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Client: (unknown)\n", out.String())
}

// Not parallel as the connection settings are passed through the environment.
func TestRootCommand_EnvOverrides(t *testing.T) {
	var (
		mu                   sync.Mutex
		gotToken, gotVersion string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/project-1/consistencygroups/detail", r.URL.Path)
		mu.Lock()
		gotToken = r.Header.Get("X-Auth-Token")
		gotVersion = r.Header.Get("OpenStack-API-Version")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"consistencygroups": []map[string]any{{"id": "cg-1", "name": "db", "status": "available"}},
		}))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("BLOCKCTL_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("BLOCKCTL_ENDPOINT", srv.URL+"/v3/project-1")
	t.Setenv("OS_AUTH_TOKEN", "env-token")
	t.Setenv("OS_VOLUME_API_VERSION", "3.10")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"cg", "ls", "-f", "json"})

	require.NoError(t, cmd.Execute())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "env-token", gotToken)
	assert.Equal(t, "volume 3.10", gotVersion)
	assert.JSONEq(t, `[{"ID": "cg-1", "Status": "available", "Name": "db"}]`, out.String())
}

func TestRootCommand_MissingEndpoint(t *testing.T) {
	t.Setenv("BLOCKCTL_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("BLOCKCTL_ENDPOINT", "")

	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"consistency-group", "show", "cg-1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current context is not set")
}
