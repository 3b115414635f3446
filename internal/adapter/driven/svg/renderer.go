// Package svg implements the BadgeRenderer port with an embedded SVG template.
package svg

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ericfisherdev/starmilestone/internal/domain/model"
	"github.com/ericfisherdev/starmilestone/internal/domain/port/driven"
)

// Layout constants. Text widths are estimated per character; exact
// typography is not attempted.
const (
	badgeHeight       = 80
	textOffsetX       = 80 // logo column
	rightPadding      = 60 // trophy and margin
	headlineCharWidth = 10.0
	statusCharWidth   = 7.5

	accentColor = "#6e5494"

	trophyPath = "M409.6 0c-18.4 0-34.4 12-39.2 29.6l-12.8 48H154.4l-12.8-48C136.8 12 120.8 0 102.4 0 74.4 0 51.2 23.2 51.2 51.2v48c0 100.8 72.8 184.8 168 201.6v66.4H128c-17.6 0-32 14.4-32 32s14.4 32 32 32h256c17.6 0 32-14.4 32-32s-14.4-32-32-32h-91.2v-66.4c95.2-16.8 168-100.8 168-201.6v-48C460.8 23.2 437.6 0 409.6 0zM115.2 99.2v-48c0-7.2 5.6-12.8 12.8-12.8 4.8 0 8.8 2.4 11.2 6.4l12.8 48h-36.8v6.4zm281.6 0h-36.8l12.8-48c2.4-4 6.4-6.4 11.2-6.4 7.2 0 12.8 5.6 12.8 12.8v41.6z"
)

// starOutline is a five-pointed star as (dx, dy) offsets from its top tip.
var starOutline = [][2]int{
	{0, 0}, {3, 10}, {13, 10}, {5, 17}, {8, 27},
	{0, 20}, {-8, 27}, {-5, 17}, {-13, 10}, {-3, 10},
}

//go:embed badge.svg.tmpl
var badgeTemplate string

// Compile-time interface satisfaction check.
var _ driven.BadgeRenderer = (*Renderer)(nil)

// Renderer renders badges. It is stateless after construction and safe for
// concurrent use.
type Renderer struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// NewRenderer parses the embedded badge template.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	tmpl, err := template.New("badge").Parse(badgeTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing badge template: %w", err)
	}
	return &Renderer{tmpl: tmpl, logger: logger}, nil
}

// badgeView is the template data of one badge.
type badgeView struct {
	Width, Height           int
	FrameWidth, FrameHeight int
	TrophyX                 int
	Accent                  string
	TrophyPath              string
	Stars                   []starView
	Logo                    template.URL
	Headline                string
	Status                  string
}

type starView struct {
	Path      string
	Transform string
}

// Render produces the SVG markup for spec. Identical specs produce identical
// bytes. A logo that is not an image data URI is left out of the badge.
func (r *Renderer) Render(spec model.RenderSpec) ([]byte, error) {
	width := Width(spec.MilestoneLabel, spec.StatusLabel)

	view := badgeView{
		Width:       width,
		Height:      badgeHeight,
		FrameWidth:  width - 4,
		FrameHeight: badgeHeight - 4,
		TrophyX:     width - 60,
		Accent:      accentColor,
		TrophyPath:  trophyPath,
		Stars: []starView{
			{Path: starPath(width-30, 15), Transform: fmt.Sprintf("rotate(15 %d 30) scale(0.8)", width-30)},
			{Path: starPath(width-50, 55), Transform: fmt.Sprintf("rotate(-10 %d 70) scale(0.5)", width-50)},
		},
		Headline: spec.MilestoneLabel,
		Status:   spec.StatusLabel,
	}

	switch {
	case !spec.HasLogo():
	case isImageDataURI(spec.LogoDataURI):
		// Data URIs are filtered as unsafe by html/template unless typed.
		view.Logo = template.URL(spec.LogoDataURI) //nolint:gosec // validated image data URI
	default:
		r.logger.Warn("logo is not an image data URI, rendering without logo",
			"prefix", logoPrefix(spec.LogoDataURI),
		)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("executing badge template: %w", err)
	}
	return buf.Bytes(), nil
}

// Width estimates the canvas width needed for the two text lines, so the
// frame always extends past the longest line plus padding.
func Width(headline, status string) int {
	text := math.Max(
		float64(len(headline))*headlineCharWidth,
		float64(len(status))*statusCharWidth,
	)
	return textOffsetX + int(math.Ceil(text)) + rightPadding
}

// starPath returns the path data of a star whose top tip is at (x, y).
func starPath(x, y int) string {
	var b strings.Builder
	for i, p := range starOutline {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(strconv.Itoa(x + p[0]))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(y + p[1]))
	}
	b.WriteString(" Z")
	return b.String()
}

// logoPrefix trims a data URI down to its header for logging.
func logoPrefix(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	if len(s) > 64 {
		s = s[:64]
	}
	return s
}

func isImageDataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ";base64,")
}
