package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gitfolio/internal/handler"
)

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&WaitForDBCommand{})
	r.Register(&AnalyzeCommand{})
	r.Register(&MigrateCommand{})

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"analyze", "migrate", "wait-for-db"}, names)

	_, ok := r.Get("missing")
	assert.False(t, ok)
}

func TestFetchReadiness(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/readyz", r.URL.Path)
		_ = json.NewEncoder(w).Encode(handler.HealthResponse{Status: "ok", GitHub: "token"})
	}))
	defer srv.Close()

	health, err := fetchReadiness(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "token", health.GitHub)
}

func TestFetchReadiness_NotReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(handler.HealthResponse{Status: "unavailable", Message: "database unreachable"})
	}))
	defer srv.Close()

	_, err := fetchReadiness(srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unreachable")
}

func TestAnalyzeCommand_Args(t *testing.T) {
	cmd := &AnalyzeCommand{}
	assert.Error(t, cmd.Run(nil))
	assert.Error(t, cmd.Run([]string{"-format", "pdf", "octocat"}))
}
