package application

import (
	"fmt"
	"time"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
	"github.com/ericfisherdev/starmilestone/internal/domain/port/driven"
)

// Location is the outcome of mapping a milestone onto the stargazer list.
// When Reached is false only CurrentStars is meaningful and no stargazer page
// should be fetched.
type Location struct {
	Reached      bool
	CurrentStars int
	Page         int // 1-based
	IndexInPage  int // 0-based
}

// PageFor maps a 1-based star ordinal to its 1-based page and 0-based offset
// within a page of driven.MaxStargazersPerPage records.
func PageFor(milestone int) (page, index int) {
	const perPage = driven.MaxStargazersPerPage
	page = (milestone + perPage - 1) / perPage
	index = (milestone - 1) % perPage
	return page, index
}

// Locate decides whether a milestone has been reached given the repository's
// total star count and, if so, where the milestone star lives.
func Locate(milestone, totalStars int) Location {
	if milestone > totalStars {
		return Location{CurrentStars: totalStars}
	}

	page, index := PageFor(milestone)
	return Location{
		Reached:      true,
		CurrentStars: totalStars,
		Page:         page,
		IndexInPage:  index,
	}
}

// StarDate extracts the timestamp of records[index].
func StarDate(records []model.Stargazer, index int) (time.Time, error) {
	if index < 0 || len(records) < index+1 {
		return time.Time{}, fmt.Errorf("%w: need index %d, page has %d records",
			model.ErrUpstreamInconsistency, index, len(records))
	}

	starredAt := records[index].StarredAt
	if starredAt.IsZero() {
		return time.Time{}, fmt.Errorf("%w: record %d (%s)", model.ErrMalformedRecord, index, records[index].Login)
	}

	return starredAt.UTC(), nil
}
