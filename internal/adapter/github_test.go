package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/models"
)

var testRepo = models.GitHubRepo{Owner: "octo", Name: "worker"}

// rawHost serves files keyed by URL path and records every requested path.
type rawHost struct {
	mu        sync.Mutex
	files     map[string]string
	status    int
	requested []string
}

func (h *rawHost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requested = append(h.requested, r.URL.Path)

	if h.status != 0 {
		w.WriteHeader(h.status)
		return
	}
	content, ok := h.files[r.URL.Path]
	if !ok {
		http.Error(w, "404: Not Found", http.StatusNotFound)
		return
	}
	_, _ = w.Write([]byte(content))
}

func newRawFetcher(t *testing.T, h *rawHost) *RawScriptFetcher {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	f, err := NewRawScriptFetcher(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return f
}

// ── RawScriptFetcher ────────────────────────────────────────────────────────

func TestRawFetcher_Main(t *testing.T) {
	h := &rawHost{files: map[string]string{"/octo/worker/main/index.js": "MAIN"}}
	f := newRawFetcher(t, h)

	script, err := f.FetchScript(context.Background(), testRepo)

	require.NoError(t, err)
	assert.Equal(t, "MAIN", script)
	assert.Equal(t, []string{"/octo/worker/main/index.js"}, h.requested)
}

func TestRawFetcher_FallsBackToMaster(t *testing.T) {
	h := &rawHost{files: map[string]string{"/octo/worker/master/index.js": "MASTER"}}
	f := newRawFetcher(t, h)

	script, err := f.FetchScript(context.Background(), testRepo)

	require.NoError(t, err)
	assert.Equal(t, "MASTER", script)
	assert.Equal(t, []string{"/octo/worker/main/index.js", "/octo/worker/master/index.js"}, h.requested)
}

func TestRawFetcher_EmptyMainFallsBack(t *testing.T) {
	h := &rawHost{files: map[string]string{
		"/octo/worker/main/index.js":   "  \n",
		"/octo/worker/master/index.js": "MASTER",
	}}
	f := newRawFetcher(t, h)

	script, err := f.FetchScript(context.Background(), testRepo)

	require.NoError(t, err)
	assert.Equal(t, "MASTER", script)
}

func TestRawFetcher_NotFoundOnBothBranches(t *testing.T) {
	h := &rawHost{files: map[string]string{}}
	f := newRawFetcher(t, h)

	_, err := f.FetchScript(context.Background(), testRepo)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScriptNotFound)
	assert.Contains(t, err.Error(), "https://github.com/octo/worker")
	assert.Len(t, h.requested, 2)
}

func TestRawFetcher_ServerError(t *testing.T) {
	h := &rawHost{status: http.StatusBadGateway}
	f := newRawFetcher(t, h)

	_, err := f.FetchScript(context.Background(), testRepo)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
	assert.NotErrorIs(t, err, ErrScriptNotFound)
}

// ── APIScriptFetcher ────────────────────────────────────────────────────────

func newContentsAPI(t *testing.T, files map[string]string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer gh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			return
		}
		if !strings.HasPrefix(r.URL.Path, "/api/v3/repos/octo/worker/contents/index.js") {
			http.NotFound(w, r)
			return
		}

		content, ok := files[r.URL.Query().Get("ref")]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":     "file",
			"name":     "index.js",
			"path":     "index.js",
			"encoding": "base64",
			"content":  base64.StdEncoding.EncodeToString([]byte(content)),
		})
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/api/v3"
}

func TestAPIFetcher_FallsBackToMaster(t *testing.T) {
	apiURL := newContentsAPI(t, map[string]string{"master": "FROM API"})

	f, err := NewAPIScriptFetcher(apiURL, "gh-token", 5*time.Second, logger.Nop())
	require.NoError(t, err)

	script, err := f.FetchScript(context.Background(), testRepo)

	require.NoError(t, err)
	assert.Equal(t, "FROM API", script)
}

func TestAPIFetcher_BadToken(t *testing.T) {
	apiURL := newContentsAPI(t, map[string]string{"main": "x"})

	f, err := NewAPIScriptFetcher(apiURL, "other-token", 5*time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = f.FetchScript(context.Background(), testRepo)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Bad credentials", err.Error())
}

func TestAPIFetcher_NotFound(t *testing.T) {
	apiURL := newContentsAPI(t, map[string]string{})

	f, err := NewAPIScriptFetcher(apiURL, "gh-token", 5*time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = f.FetchScript(context.Background(), testRepo)

	assert.ErrorIs(t, err, ErrScriptNotFound)
}

func TestNewAPIScriptFetcher_RequiresToken(t *testing.T) {
	_, err := NewAPIScriptFetcher("https://api.github.com/", "", time.Second, logger.Nop())
	assert.Error(t, err)
}

func TestNewScriptFetcher_SelectsImplementation(t *testing.T) {
	anon, err := NewScriptFetcher(config.GitHub{RawURL: "https://raw.githubusercontent.com"}, time.Second, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &RawScriptFetcher{}, anon)

	authed, err := NewScriptFetcher(config.GitHub{
		RawURL: "https://raw.githubusercontent.com",
		APIURL: "https://api.github.com/",
		Token:  "gh-token",
	}, time.Second, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &APIScriptFetcher{}, authed)
}
