package driven

import "context"

// LogoFetcher downloads an image and returns it as a data: URI.
// Every failure is reported as an error wrapping model.ErrLogoFetch.
type LogoFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
