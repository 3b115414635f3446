package web

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		raw       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{raw: "https://github.com/golang/go", wantOwner: "golang", wantRepo: "go", wantOK: true},
		{raw: "  https://github.com/golang/go/tree/master  ", wantOwner: "golang", wantRepo: "go", wantOK: true},
		{raw: "github.com/octo/hello.git", wantOwner: "octo", wantRepo: "hello", wantOK: true},
		{raw: "https://github.com/octo/hello?tab=readme", wantOwner: "octo", wantRepo: "hello", wantOK: true},
		{raw: "https://github.com/octo", wantOK: false},
		{raw: "https://gitlab.com/octo/hello", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tt := range tests {
		owner, repo, ok := ParseRepoURL(tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		assert.Equal(t, tt.wantOwner, owner, tt.raw)
		assert.Equal(t, tt.wantRepo, repo, tt.raw)
	}
}

func TestBadgeURL(t *testing.T) {
	assert.Equal(t,
		"https://badges.example/api/milestone?milestone=100&owner=octo&repo=hello",
		BadgeURL("https://badges.example/", "octo", "hello", "100", ""))

	assert.Equal(t,
		"http://localhost:8080/api/milestone?logo=https%3A%2F%2Fl.example%2Fa.png&milestone=5&owner=o&repo=r",
		BadgeURL("http://localhost:8080", "o", "r", "5", "https://l.example/a.png"))
}

func TestMarkdownSnippet(t *testing.T) {
	assert.Equal(t,
		"[![Star Milestone](https://b.example/api/milestone?x=1)](https://github.com/o/r)",
		MarkdownSnippet("https://b.example/api/milestone?x=1", "https://github.com/o/r"))
}

func TestRequestBaseURL(t *testing.T) {
	r := httptest.NewRequest("GET", "http://badges.internal:8080/", nil)
	assert.Equal(t, "http://badges.internal:8080", requestBaseURL(r))

	r.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://badges.internal:8080", requestBaseURL(r))

	r = httptest.NewRequest("GET", "https://secure.example/", nil)
	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://secure.example", requestBaseURL(r))
}
