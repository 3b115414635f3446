// Package web implements the HTML form driving adapter used to configure and
// preview milestone badges.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// defaultMilestone pre-fills the milestone field.
const defaultMilestone = 100

// Handler is the web GUI driving adapter that serves the badge form.
type Handler struct {
	pages     *template.Template
	publicURL string
	logger    *slog.Logger
}

// NewHandler creates a Handler. publicURL is the base used in generated badge
// URLs; empty derives it from each request.
func NewHandler(publicURL string, logger *slog.Logger) (*Handler, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}

	return &Handler{
		pages:     pages,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

// formPage is the template data of the form page.
type formPage struct {
	RepoURL      string
	Milestone    string
	LogoURL      string
	Error        string
	BadgeURL     string
	Markdown     string
	MarkdownHTML template.HTML
}

// Form renders the form and, when a repository URL was submitted, the badge
// preview with its Markdown embed snippet.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := formPage{
		RepoURL:   strings.TrimSpace(q.Get("repo_url")),
		Milestone: strings.TrimSpace(q.Get("milestone")),
		LogoURL:   strings.TrimSpace(q.Get("logo")),
	}
	if page.Milestone == "" {
		page.Milestone = strconv.Itoa(defaultMilestone)
	}

	if page.RepoURL != "" {
		h.fillPreview(r, &page)
	}

	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, "index.html", page); err != nil {
		h.logger.Error("failed to render form", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) fillPreview(r *http.Request, page *formPage) {
	owner, repo, ok := ParseRepoURL(page.RepoURL)
	if !ok {
		page.Error = "Invalid GitHub Repository URL"
		return
	}

	base := h.publicURL
	if base == "" {
		base = requestBaseURL(r)
	}

	page.BadgeURL = BadgeURL(base, owner, repo, page.Milestone, page.LogoURL)
	page.Markdown = MarkdownSnippet(page.BadgeURL, page.RepoURL)
	// Sanitized by bluemonday, so safe to embed unescaped.
	page.MarkdownHTML = template.HTML(RenderSnippet(page.Markdown)) //nolint:gosec // sanitized above
}
