package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
)

func TestParseMilestoneRequest(t *testing.T) {
	tests := []struct {
		name      string
		owner     string
		repo      string
		milestone string
		logo      string
		want      model.MilestoneRequest
		wantErr   error
	}{
		{
			name:      "valid without logo",
			owner:     "golang",
			repo:      "go",
			milestone: "100",
			want:      model.MilestoneRequest{Owner: "golang", Repo: "go", Milestone: 100},
		},
		{
			name:      "valid with logo and surrounding whitespace",
			owner:     " octo-org ",
			repo:      "my.repo_1",
			milestone: " 250 ",
			logo:      "https://example.com/logo.png",
			want: model.MilestoneRequest{
				Owner: "octo-org", Repo: "my.repo_1", Milestone: 250,
				LogoURL: "https://example.com/logo.png",
			},
		},
		{name: "missing owner", repo: "go", milestone: "1", wantErr: model.ErrMissingParameters},
		{name: "missing repo", owner: "golang", milestone: "1", wantErr: model.ErrMissingParameters},
		{name: "missing milestone", owner: "golang", repo: "go", wantErr: model.ErrMissingParameters},
		{name: "whitespace only owner", owner: "  ", repo: "go", milestone: "1", wantErr: model.ErrMissingParameters},
		{name: "zero milestone", owner: "o", repo: "r", milestone: "0", wantErr: model.ErrInvalidMilestone},
		{name: "negative milestone", owner: "o", repo: "r", milestone: "-5", wantErr: model.ErrInvalidMilestone},
		{name: "non numeric milestone", owner: "o", repo: "r", milestone: "abc", wantErr: model.ErrInvalidMilestone},
		{name: "fractional milestone", owner: "o", repo: "r", milestone: "1.5", wantErr: model.ErrInvalidMilestone},
		{name: "trailing garbage", owner: "o", repo: "r", milestone: "12abc", wantErr: model.ErrInvalidMilestone},
		{
			name:      "relative logo passes through",
			owner:     "o",
			repo:      "r",
			milestone: "1",
			logo:      "example.com/a.png",
			want:      model.MilestoneRequest{Owner: "o", Repo: "r", Milestone: 1, LogoURL: "example.com/a.png"},
		},
		{
			name:      "unusual repo name passes through",
			owner:     "o",
			repo:      "r/../x",
			milestone: "1",
			want:      model.MilestoneRequest{Owner: "o", Repo: "r/../x", Milestone: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMilestoneRequest(tt.owner, tt.repo, tt.milestone, tt.logo)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
