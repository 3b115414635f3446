package web

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// repoURLPattern extracts owner and repository from a pasted GitHub URL.
var repoURLPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// ParseRepoURL extracts owner and repo from a URL such as
// https://github.com/owner/repo. A trailing ".git", query or fragment on the
// repository segment is dropped.
func ParseRepoURL(raw string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", "", false
	}

	owner, repo = m[1], m[2]
	if i := strings.IndexAny(repo, "?#"); i >= 0 {
		repo = repo[:i]
	}
	repo = strings.TrimSuffix(repo, ".git")

	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}

// BadgeURL builds the absolute /api/milestone URL for the given inputs.
func BadgeURL(baseURL, owner, repo, milestone, logo string) string {
	params := url.Values{}
	params.Set("owner", owner)
	params.Set("repo", repo)
	if logo != "" {
		params.Set("logo", logo)
	}
	params.Set("milestone", milestone)

	return strings.TrimSuffix(baseURL, "/") + "/api/milestone?" + params.Encode()
}

// MarkdownSnippet returns the embed snippet linking the badge to the repository.
func MarkdownSnippet(badgeURL, repoURL string) string {
	return "[![Star Milestone](" + badgeURL + ")](" + repoURL + ")"
}

// requestBaseURL derives scheme://host of the incoming request, honoring a
// TLS-terminating proxy's X-Forwarded-Proto.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" || proto == "http" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
