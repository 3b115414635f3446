package model

// RepositorySummary is the subset of GitHub repository metadata needed to
// resolve a milestone: the current star count and the owner's avatar, which is
// the default badge logo.
type RepositorySummary struct {
	StarCount      int
	OwnerAvatarURL string
}
