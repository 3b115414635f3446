package application

import (
	"strconv"
	"strings"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
)

// ParseMilestoneRequest validates raw query parameters and returns a
// MilestoneRequest. Missing values fail with model.ErrMissingParameters before
// any other check; the milestone must be a positive decimal integer. Owner,
// repo and logo are otherwise passed through: a bad name surfaces as an
// upstream failure and a bad logo as a badge without one.
func ParseMilestoneRequest(owner, repo, milestone, logo string) (model.MilestoneRequest, error) {
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)
	milestone = strings.TrimSpace(milestone)
	logo = strings.TrimSpace(logo)

	if owner == "" || repo == "" || milestone == "" {
		return model.MilestoneRequest{}, model.ErrMissingParameters
	}

	n, err := strconv.Atoi(milestone)
	if err != nil || n <= 0 {
		return model.MilestoneRequest{}, model.ErrInvalidMilestone
	}

	return model.MilestoneRequest{
		Owner:     owner,
		Repo:      repo,
		Milestone: n,
		LogoURL:   logo,
	}, nil
}
