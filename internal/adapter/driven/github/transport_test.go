package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStackClient(t *testing.T, opts Options, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient(opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	u, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	c.gh.BaseURL = u

	return c
}

func repoHandler(gotAuth *string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"stargazers_count": 1, "owner": {"avatar_url": "https://a.example/1"}}`)
	}
}

func TestNewClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newStackClient(t, Options{Token: "ghp_secret", Timeout: 5 * time.Second}, repoHandler(&gotAuth))

	_, err := c.GetRepository(context.Background(), "o", "r")

	require.NoError(t, err)
	assert.Equal(t, "Bearer ghp_secret", gotAuth)
}

func TestNewClient_AnonymousWithoutToken(t *testing.T) {
	var gotAuth string
	c := newStackClient(t, Options{}, repoHandler(&gotAuth))

	_, err := c.GetRepository(context.Background(), "o", "r")

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestNewClient_FullStack(t *testing.T) {
	var gotAuth string
	c := newStackClient(t, Options{
		Token:           "ghp_secret",
		Timeout:         5 * time.Second,
		CacheResponses:  true,
		WaitOnRateLimit: true,
	}, repoHandler(&gotAuth))

	summary, err := c.GetRepository(context.Background(), "o", "r")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.StarCount)
	assert.Equal(t, "Bearer ghp_secret", gotAuth)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	assert.Equal(t, 3*time.Second, newHTTPClient(Options{Timeout: 3 * time.Second}).Timeout)
}
