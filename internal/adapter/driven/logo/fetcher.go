// Package logo implements the LogoFetcher port over plain HTTP.
package logo

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
	"github.com/ericfisherdev/starmilestone/internal/domain/port/driven"
)

// DefaultContentType is used when the logo response declares no content type.
const DefaultContentType = "image/png"

// Compile-time interface satisfaction check.
var _ driven.LogoFetcher = (*Fetcher)(nil)

// Fetcher downloads logos and encodes them as data: URIs. It uses its own
// http.Client so the GitHub token is never sent to arbitrary hosts.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewFetcher creates a Fetcher. maxBytes caps the accepted body size; zero or
// negative disables the cap.
func NewFetcher(client *http.Client, maxBytes int64) *Fetcher {
	return &Fetcher{client: client, maxBytes: maxBytes}
}

// Fetch downloads url and returns "data:<type>;base64,<payload>". Every
// failure wraps model.ErrLogoFetch.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if !isHTTPURL(url) {
		return "", fmt.Errorf("%w: %q is not an absolute http(s) URL", model.ErrLogoFetch, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: building request for %s: %w", model.ErrLogoFetch, url, err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrLogoFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned status %d", model.ErrLogoFetch, url, resp.StatusCode)
	}

	body, err := f.readBody(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", model.ErrLogoFetch, url, err)
	}

	mt := mediaType(resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(mt, "image/") {
		// Some hosts serve images as application/octet-stream.
		mt = mediaType(http.DetectContentType(body))
	}
	if !strings.HasPrefix(mt, "image/") {
		return "", fmt.Errorf("%w: %s is not an image (%s)", model.ErrLogoFetch, url, mt)
	}

	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}

func (f *Fetcher) readBody(r io.Reader) ([]byte, error) {
	if f.maxBytes <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", f.maxBytes)
	}
	return body, nil
}

// mediaType strips parameters from a Content-Type header value, falling back
// to DefaultContentType when it is absent or unparsable.
func mediaType(contentType string) string {
	if strings.TrimSpace(contentType) == "" {
		return DefaultContentType
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil || mt == "" {
		return DefaultContentType
	}
	return mt
}

// isHTTPURL reports whether raw is an absolute http or https URL. Other
// schemes are never dialed.
func isHTTPURL(raw string) bool {
	u, err := neturl.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
