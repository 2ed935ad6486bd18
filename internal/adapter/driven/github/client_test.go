package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ghAdapter "github.com/ericfisherdev/portfolio-api/internal/adapter/driven/github"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *ghAdapter.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ghAdapter.NewClientWithHTTPClient(server.Client(), server.URL+"/")
	require.NoError(t, err)

	return client
}

func TestClient_FetchRepo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/spectral", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"name": "spectral",
			"stargazers_count": 42,
			"pushed_at": "2026-04-02T08:30:00Z"
		}`)
	}))

	meta, err := client.FetchRepo(context.Background(), "octocat", "spectral")
	require.NoError(t, err)

	assert.Equal(t, "octocat", meta.Owner)
	assert.Equal(t, "spectral", meta.Name)
	assert.Equal(t, 42, meta.Stars)
	assert.Equal(t, time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC), meta.LastPushedAt)
}

func TestClient_FetchRepo_NeverPushed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name": "spectral", "stargazers_count": 0}`)
	}))

	meta, err := client.FetchRepo(context.Background(), "octocat", "spectral")
	require.NoError(t, err)
	assert.True(t, meta.LastPushedAt.IsZero())
}

func TestClient_FetchRepo_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}))

	_, err := client.FetchRepo(context.Background(), "octocat", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "octocat/missing")
}
