package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the parent of every client-side validation failure.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrMissingParameters = fmt.Errorf("%w: missing parameters", ErrInvalidInput)
	ErrInvalidMilestone  = fmt.Errorf("%w: milestone must be a positive integer", ErrInvalidInput)
)

var (
	// ErrNotFound is returned when the upstream reports the repository does not exist.
	ErrNotFound = errors.New("repository not found")
	// ErrUpstream covers network failures, non-2xx statuses and undecodable responses.
	ErrUpstream = errors.New("upstream error")
	// ErrUpstreamInconsistency is returned when a stargazer page holds fewer records
	// than the repository's star count implies, e.g. a star removed between calls.
	ErrUpstreamInconsistency = errors.New("stargazer page shorter than expected")
	// ErrMalformedRecord is returned when the milestone stargazer has no timestamp.
	ErrMalformedRecord = errors.New("stargazer record has no timestamp")
	// ErrLogoFetch wraps every logo download failure. It never fails a request.
	ErrLogoFetch = errors.New("logo fetch failed")
)
