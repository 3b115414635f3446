package driven

import "github.com/ericfisherdev/starmilestone/internal/domain/model"

// BadgeRenderer turns a resolved RenderSpec into SVG markup. Implementations
// must not perform I/O and must be deterministic.
type BadgeRenderer interface {
	Render(spec model.RenderSpec) ([]byte, error)
}
