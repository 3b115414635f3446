package model

import "time"

// DateLayout is the calendar-date format used on badges.
const DateLayout = "2006-01-02"

// MilestoneRequest is a validated request for a star milestone badge.
// LogoURL is empty when the caller did not supply one.
type MilestoneRequest struct {
	Owner     string
	Repo      string
	Milestone int
	LogoURL   string
}

// FullName returns the "owner/repo" form of the request's repository.
func (r MilestoneRequest) FullName() string {
	return r.Owner + "/" + r.Repo
}

// MilestoneResult is either Achieved (Date set) or Pending (CurrentStars set).
type MilestoneResult struct {
	Achieved     bool
	Date         time.Time
	CurrentStars int
}

// AchievedOn returns a result for a milestone reached at t.
func AchievedOn(t time.Time) MilestoneResult {
	return MilestoneResult{Achieved: true, Date: t.UTC()}
}

// PendingAt returns a result for a milestone not yet reached.
func PendingAt(currentStars int) MilestoneResult {
	return MilestoneResult{CurrentStars: currentStars}
}

// DateLabel formats the achievement date as YYYY-MM-DD in UTC.
// Returns empty string for pending results.
func (r MilestoneResult) DateLabel() string {
	if !r.Achieved {
		return ""
	}
	return r.Date.UTC().Format(DateLayout)
}
