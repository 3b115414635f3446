package github

import (
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/gregjones/httpcache"
	"golang.org/x/oauth2"
)

// Options configures the outbound transport stack of a Client.
type Options struct {
	// Token is the optional GitHub token. Empty means anonymous calls.
	Token string
	// Timeout bounds every outbound call. Zero means no client-side bound.
	Timeout time.Duration
	// CacheResponses enables ETag conditional request caching.
	CacheResponses bool
	// WaitOnRateLimit enables the secondary rate limit middleware, which sleeps
	// on 429/403 abuse responses instead of failing.
	WaitOnRateLimit bool
}

// newHTTPClient builds the transport stack, innermost first:
//  1. httpcache (ETag-based conditional request caching), when enabled
//  2. go-github-ratelimit (secondary rate limit middleware), when enabled
//  3. oauth2 bearer token, when a token is configured
func newHTTPClient(opts Options) *http.Client {
	var rt http.RoundTripper = http.DefaultTransport

	if opts.CacheResponses {
		cache := httpcache.NewMemoryCacheTransport()
		cache.Transport = rt
		rt = cache
	}

	if opts.WaitOnRateLimit {
		rt = github_ratelimit.NewClient(rt).Transport
	}

	if opts.Token != "" {
		rt = &oauth2.Transport{
			Base:   rt,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   opts.Timeout,
	}
}
