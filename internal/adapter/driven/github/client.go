// Package github implements the RepositoryClient port using the go-github library.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gh "github.com/google/go-github/v82/github"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
	"github.com/ericfisherdev/starmilestone/internal/domain/port/driven"
	"github.com/ericfisherdev/starmilestone/internal/metrics"
)

// Compile-time interface satisfaction check.
var _ driven.RepositoryClient = (*Client)(nil)

// Client implements the driven.RepositoryClient port using the go-github library.
type Client struct {
	gh     *gh.Client
	logger *slog.Logger
}

// NewClient creates a GitHub API client on top of the transport stack
// described by opts. A Client is meant to live for the whole process.
func NewClient(opts Options, logger *slog.Logger) *Client {
	return &Client{
		gh:     gh.NewClient(newHTTPClient(opts)),
		logger: logger,
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, logger *slog.Logger) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client, logger: logger}, nil
}

// GetRepository fetches repository metadata and maps it to a RepositorySummary.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (model.RepositorySummary, error) {
	if err := checkRepoPath(owner, repo); err != nil {
		return model.RepositorySummary{}, err
	}

	start := time.Now()
	r, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	c.observe("get_repository", resp, start)
	if err != nil {
		return model.RepositorySummary{}, classify(fmt.Sprintf("fetching repository %s/%s", owner, repo), resp, err)
	}

	c.logRateLimit(resp, owner+"/"+repo, 0, 1)

	return model.RepositorySummary{
		StarCount:      r.GetStargazersCount(),
		OwnerAvatarURL: r.GetOwner().GetAvatarURL(),
	}, nil
}

// ListStargazers fetches one page of stargazers. go-github requests the
// starring media type, so every record carries starred_at.
func (c *Client) ListStargazers(ctx context.Context, owner, repo string, page, perPage int) ([]model.Stargazer, error) {
	if err := checkRepoPath(owner, repo); err != nil {
		return nil, err
	}
	if perPage <= 0 || perPage > driven.MaxStargazersPerPage {
		perPage = driven.MaxStargazersPerPage
	}
	opts := &gh.ListOptions{Page: page, PerPage: perPage}

	start := time.Now()
	stargazers, resp, err := c.gh.Activity.ListStargazers(ctx, owner, repo, opts)
	c.observe("list_stargazers", resp, start)
	if err != nil {
		return nil, classify(fmt.Sprintf("listing stargazers for %s/%s (page %d)", owner, repo, page), resp, err)
	}

	c.logRateLimit(resp, owner+"/"+repo+"/stargazers", page, len(stargazers))

	records := make([]model.Stargazer, 0, len(stargazers))
	for _, s := range stargazers {
		records = append(records, mapStargazer(s))
	}
	return records, nil
}

// checkRepoPath rejects owner and repo values that go-github would splice
// into the request path unescaped. No GitHub repository can carry such a name,
// so they are reported as not found without a network call.
func checkRepoPath(owner, repo string) error {
	if isValidNamePart(owner) && isValidNamePart(repo) {
		return nil
	}
	return fmt.Errorf("repository %q/%q: %w: name has disallowed characters", owner, repo, model.ErrNotFound)
}

// isValidNamePart returns true if s is a usable GitHub owner or repository
// name: alphanumerics, hyphens, dots and underscores, and not a dot segment.
func isValidNamePart(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	for _, ch := range s {
		if !isValidRepoChar(ch) {
			return false
		}
	}
	return true
}

// isValidRepoChar returns true if the rune is allowed in a repository owner or name.
func isValidRepoChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '-' || ch == '.' || ch == '_'
}

// mapStargazer converts a go-github Stargazer to a domain model Stargazer.
// A missing starred_at stays a zero time.
func mapStargazer(s *gh.Stargazer) model.Stargazer {
	var starredAt time.Time
	if s.StarredAt != nil {
		starredAt = s.GetStarredAt().Time
	}
	return model.Stargazer{
		Login:     s.GetUser().GetLogin(),
		StarredAt: starredAt,
	}
}

// classify wraps err with the matching domain sentinel: 404 becomes
// model.ErrNotFound, everything else model.ErrUpstream.
func classify(op string, resp *gh.Response, err error) error {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w: %w", op, model.ErrNotFound, err)
	}
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w: %w", op, model.ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w: %w", op, model.ErrUpstream, err)
}

// observe records the call duration labelled with the HTTP status, or
// "error" when no response was received.
func (c *Client) observe(operation string, resp *gh.Response, start time.Time) {
	status := "error"
	if resp != nil && resp.Response != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	metrics.RecordUpstreamCall(operation, status, time.Since(start))
}

// logRateLimit logs the GitHub API rate limit status after each call.
func (c *Client) logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	c.logger.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 100 {
		c.logger.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
