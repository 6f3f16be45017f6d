package consistencygroup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer serves the consistency group API of a single project on top of a fixed set of groups.
type fakeServer struct {
	groups map[string]map[string]any
	order  []string

	mu      sync.Mutex
	deleted []string
}

func newFakeServer(groups ...map[string]any) *fakeServer {
	s := &fakeServer{groups: map[string]map[string]any{}}
	for _, g := range groups {
		id := g["id"].(string)
		s.groups[id] = g
		s.order = append(s.order, id)
	}
	return s
}

func (s *fakeServer) deletedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.deleted)
}

func (s *fakeServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		assert.NoError(t, json.NewEncoder(w).Encode(v))
	}

	mux.HandleFunc("GET /v3/project-1/consistencygroups/detail", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		groups := []map[string]any{}
		for _, id := range s.order {
			if name == "" || s.groups[id]["name"] == name {
				groups = append(groups, s.groups[id])
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"consistencygroups": groups})
	})
	mux.HandleFunc("GET /v3/project-1/consistencygroups/{id}", func(w http.ResponseWriter, r *http.Request) {
		g, ok := s.groups[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"itemNotFound": map[string]any{"code": 404, "message": "ConsistencyGroup could not be found."},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"consistencygroup": g})
	})
	mux.HandleFunc("POST /v3/project-1/consistencygroups/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-token", r.Header.Get("X-Auth-Token"))
		s.mu.Lock()
		s.deleted = append(s.deleted, r.PathValue("id"))
		s.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	})
	return mux
}

func execute(t *testing.T, srv *fakeServer, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	httpSrv := httptest.NewServer(srv.handler(t))
	t.Cleanup(httpSrv.Close)

	uncli, err := cli.New(filepath.Join(t.TempDir(), "config.yaml"), "", config.Connection{
		Endpoint: httpSrv.URL + "/v3/project-1",
		Token:    "secret-token",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.WithValue(context.Background(), "cli", uncli))
	return out.String(), err
}

var (
	dbGroup = map[string]any{
		"id":                "cg-1",
		"name":              "db",
		"status":            "available",
		"availability_zone": "nova",
		"description":       "",
		"volume_types":      []any{"vt-1"},
	}
	webGroup = map[string]any{
		"id":                "cg-2",
		"name":              "web",
		"status":            "error",
		"availability_zone": "nova",
		"description":       "Frontend",
		"volume_types":      []any{"vt-2", "vt-1"},
	}
)

func TestListCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, newFakeServer(dbGroup, webGroup), NewListCommand(),
		"--long", "-c", "Name,Volume Types", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Name": "db", "Volume Types": "vt-1"},
		{"Name": "web", "Volume Types": "vt-1, vt-2"}
	]`, out)
}

func TestListCommand_UnknownColumn(t *testing.T) {
	t.Parallel()

	_, err := execute(t, newFakeServer(dbGroup), NewListCommand(), "-c", "Description")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown column(s) ["Description"]`)
}

func TestShowCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, newFakeServer(dbGroup, webGroup), NewShowCommand(), "web", "-f", "yaml")
	require.NoError(t, err)
	assert.Equal(t, `availability_zone: nova
description: Frontend
id: cg-2
name: web
status: error
volume_types:
  - vt-2
  - vt-1
`, out)
}

func TestShowCommand_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, newFakeServer(dbGroup), NewShowCommand(), "db", "-f", "xml")
	assert.EqualError(t, err, "invalid output format 'xml': must be one of [table json yaml]")
}

func TestDeleteCommand(t *testing.T) {
	t.Parallel()

	srv := newFakeServer(dbGroup, webGroup)
	out, err := execute(t, srv, NewDeleteCommand(), "db", "bad-id", "cg-2")

	assert.EqualError(t, err, "1 of 3 consistency groups failed to delete.")
	assert.Empty(t, out)
	assert.Equal(t, []string{"cg-1", "cg-2"}, srv.deletedIDs())
}

func TestCommands_GroupNamedAfterListRoute(t *testing.T) {
	t.Parallel()

	detailGroup := map[string]any{
		"id":     "cg-3",
		"name":   "detail",
		"status": "available",
	}

	t.Run("show", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, newFakeServer(dbGroup, detailGroup), NewShowCommand(), "detail", "-f", "json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": "cg-3", "name": "detail", "status": "available"}`, out)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		srv := newFakeServer(dbGroup, detailGroup)
		_, err := execute(t, srv, NewDeleteCommand(), "detail")
		require.NoError(t, err)
		assert.Equal(t, []string{"cg-3"}, srv.deletedIDs())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		srv := newFakeServer(dbGroup, map[string]any{"id": "cg-4", "name": "", "status": "error"})
		_, err := execute(t, srv, NewDeleteCommand(), "")
		assert.EqualError(t, err, "1 of 1 consistency groups failed to delete.")
		assert.Empty(t, srv.deletedIDs())
	})
}
