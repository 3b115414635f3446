package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
	"github.com/ericfisherdev/starmilestone/internal/domain/port/driven"
	"github.com/ericfisherdev/starmilestone/internal/metrics"
)

// Badge is the rendered SVG together with the milestone result it encodes.
type Badge struct {
	SVG    []byte
	Result model.MilestoneResult
}

// MilestoneService runs the badge pipeline: repository lookup, milestone
// location, stargazer page fetch, logo download and rendering. It holds no
// per-request state and is safe for concurrent use.
type MilestoneService struct {
	repos    driven.RepositoryClient
	logos    driven.LogoFetcher
	renderer driven.BadgeRenderer
	logger   *slog.Logger
}

// NewMilestoneService creates a MilestoneService with the required dependencies.
func NewMilestoneService(
	repos driven.RepositoryClient,
	logos driven.LogoFetcher,
	renderer driven.BadgeRenderer,
	logger *slog.Logger,
) *MilestoneService {
	return &MilestoneService{
		repos:    repos,
		logos:    logos,
		renderer: renderer,
		logger:   logger,
	}
}

// Generate produces the badge for req. Errors wrap the model sentinels so the
// caller can classify them with errors.Is. Logo failures are never returned.
func (s *MilestoneService) Generate(ctx context.Context, req model.MilestoneRequest) (Badge, error) {
	summary, err := s.repos.GetRepository(ctx, req.Owner, req.Repo)
	if err != nil {
		return Badge{}, fmt.Errorf("fetching repository %s: %w", req.FullName(), err)
	}

	result, err := s.resolveMilestone(ctx, req, summary)
	if err != nil {
		return Badge{}, err
	}

	logoURL := req.LogoURL
	if logoURL == "" {
		logoURL = summary.OwnerAvatarURL
	}
	logo := s.resolveLogo(ctx, logoURL)

	svg, err := s.renderer.Render(BuildRenderSpec(req.Milestone, result, logo))
	if err != nil {
		return Badge{}, fmt.Errorf("rendering badge for %s: %w", req.FullName(), err)
	}

	return Badge{SVG: svg, Result: result}, nil
}

// resolveMilestone fetches the stargazer page holding the milestone star,
// unless the repository has not reached the milestone yet.
func (s *MilestoneService) resolveMilestone(ctx context.Context, req model.MilestoneRequest, summary model.RepositorySummary) (model.MilestoneResult, error) {
	loc := Locate(req.Milestone, summary.StarCount)
	if !loc.Reached {
		return model.PendingAt(loc.CurrentStars), nil
	}

	records, err := s.repos.ListStargazers(ctx, req.Owner, req.Repo, loc.Page, driven.MaxStargazersPerPage)
	if err != nil {
		return model.MilestoneResult{}, fmt.Errorf("listing stargazers for %s (page %d): %w", req.FullName(), loc.Page, err)
	}

	starredAt, err := StarDate(records, loc.IndexInPage)
	if err != nil {
		return model.MilestoneResult{}, fmt.Errorf("locating star %d of %s: %w", req.Milestone, req.FullName(), err)
	}

	return model.AchievedOn(starredAt), nil
}

// resolveLogo downloads the logo and maps any failure to "no logo".
func (s *MilestoneService) resolveLogo(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	dataURI, err := s.logos.Fetch(ctx, url)
	if err != nil {
		metrics.IncLogoFetch(false)
		s.logger.Warn("logo fetch failed, rendering without logo", "url", url, "error", err)
		return ""
	}

	metrics.IncLogoFetch(true)
	return dataURI
}

// BuildRenderSpec derives the badge labels from a milestone result.
func BuildRenderSpec(milestone int, result model.MilestoneResult, logoDataURI string) model.RenderSpec {
	status := "Current: " + strconv.Itoa(result.CurrentStars) + " Stars"
	if result.Achieved {
		status = "Achieved on " + result.DateLabel()
	}

	return model.RenderSpec{
		LogoDataURI:    logoDataURI,
		MilestoneLabel: strconv.Itoa(milestone) + " Stars Milestone",
		StatusLabel:    status,
	}
}
