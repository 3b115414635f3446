package driven

import (
	"context"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
)

// MaxStargazersPerPage is the page size cap enforced by the GitHub API.
const MaxStargazersPerPage = 100

// RepositoryClient defines the driven port for the read-only GitHub calls the
// milestone pipeline needs.
type RepositoryClient interface {
	// GetRepository returns star count and owner avatar. Fails with
	// model.ErrNotFound when the repository does not exist, model.ErrUpstream otherwise.
	GetRepository(ctx context.Context, owner, repo string) (model.RepositorySummary, error)
	// ListStargazers returns one 1-based page of stargazers in ascending star
	// time, each annotated with the time it starred the repository.
	ListStargazers(ctx context.Context, owner, repo string, page, perPage int) ([]model.Stargazer, error)
}
