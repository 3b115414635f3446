package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
)

func TestPageFor(t *testing.T) {
	tests := []struct {
		milestone int
		wantPage  int
		wantIndex int
	}{
		{milestone: 1, wantPage: 1, wantIndex: 0},
		{milestone: 99, wantPage: 1, wantIndex: 98},
		{milestone: 100, wantPage: 1, wantIndex: 99},
		{milestone: 101, wantPage: 2, wantIndex: 0},
		{milestone: 250, wantPage: 3, wantIndex: 49},
		{milestone: 1000, wantPage: 10, wantIndex: 99},
	}

	for _, tt := range tests {
		page, index := PageFor(tt.milestone)
		assert.Equal(t, tt.wantPage, page, "page for milestone %d", tt.milestone)
		assert.Equal(t, tt.wantIndex, index, "index for milestone %d", tt.milestone)
	}
}

func TestLocate_Unreached(t *testing.T) {
	for _, tc := range []struct{ milestone, total int }{{1, 0}, {101, 100}, {5000, 4999}} {
		loc := Locate(tc.milestone, tc.total)
		assert.False(t, loc.Reached)
		assert.Equal(t, tc.total, loc.CurrentStars)
		assert.Zero(t, loc.Page)
	}
}

func TestLocate_Reached(t *testing.T) {
	loc := Locate(250, 250)
	assert.True(t, loc.Reached)
	assert.Equal(t, 3, loc.Page)
	assert.Equal(t, 49, loc.IndexInPage)
	assert.Equal(t, 250, loc.CurrentStars)
}

func TestStarDate(t *testing.T) {
	ts := time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)
	records := []model.Stargazer{
		{Login: "a", StarredAt: ts.Add(-time.Hour)},
		{Login: "b", StarredAt: ts},
		{Login: "c"},
	}

	got, err := StarDate(records, 1)
	require.NoError(t, err)
	assert.Equal(t, ts, got)

	_, err = StarDate(records, 2)
	assert.ErrorIs(t, err, model.ErrMalformedRecord)

	_, err = StarDate(records, 3)
	assert.ErrorIs(t, err, model.ErrUpstreamInconsistency)

	_, err = StarDate(nil, 0)
	assert.ErrorIs(t, err, model.ErrUpstreamInconsistency)
}

func TestStarDate_NormalizesToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	records := []model.Stargazer{{Login: "a", StarredAt: time.Date(2023, 6, 16, 2, 0, 0, 0, tokyo)}}

	got, err := StarDate(records, 0)
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15", model.AchievedOn(got).DateLabel())
}
