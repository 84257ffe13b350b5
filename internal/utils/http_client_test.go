package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	client := NewHTTPClient(
		WithBaseURL("https://example.test/api"),
		WithTimeout(5*time.Second),
		WithHeader("X-Custom", "yes"),
	)

	assert.Equal(t, "https://example.test/api", client.BaseURL)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)
	assert.Equal(t, "yes", client.Header.Get("X-Custom"))
	assert.Equal(t, DefaultUserAgent, client.Header.Get("User-Agent"))
}

func TestNewHTTPClient_ZeroTimeoutKeepsDefault(t *testing.T) {
	client := NewHTTPClient(WithTimeout(0))

	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_SendsHeaders(t *testing.T) {
	var gotAgent, gotCustom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotCustom = r.Header.Get("X-Custom")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL), WithUserAgent("tester/1.0"), WithHeader("X-Custom", "v"))
	resp, err := client.R().Get("/ping")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "tester/1.0", gotAgent)
	assert.Equal(t, "v", gotCustom)
}
