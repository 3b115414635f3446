package model

// RenderSpec holds the fully resolved inputs of the badge renderer.
// An empty LogoDataURI means the logo element is omitted.
type RenderSpec struct {
	LogoDataURI    string
	MilestoneLabel string
	StatusLabel    string
}

// HasLogo reports whether the badge embeds a logo image.
func (s RenderSpec) HasLogo() bool {
	return s.LogoDataURI != ""
}
