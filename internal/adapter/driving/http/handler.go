// Package httphandler implements the REST driving adapter serving badges.
package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ericfisherdev/starmilestone/internal/application"
	"github.com/ericfisherdev/starmilestone/internal/domain/model"
	"github.com/ericfisherdev/starmilestone/internal/metrics"
)

// Plain-text bodies of the badge endpoint.
const (
	msgMissingParameters = "Missing parameters"
	msgInvalidMilestone  = "Invalid milestone"
	msgGenerationFailed  = "Error generating image"
	msgStargazerData     = "Error fetching stargazer data"
	msgDateNotFound      = "Date not found in stargazer data"
)

// Handler is the HTTP driving adapter that serves the badge API.
type Handler struct {
	milestoneSvc *application.MilestoneService
	cacheControl string
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. cacheControl is
// sent verbatim on successful badge responses; empty omits the header.
func NewHandler(milestoneSvc *application.MilestoneService, cacheControl string, logger *slog.Logger) *Handler {
	return &Handler{
		milestoneSvc: milestoneSvc,
		cacheControl: cacheControl,
		logger:       logger,
	}
}

// RegisterAPIRoutes registers the API, health and metrics routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/milestone", h.Milestone)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
}

// NewServeMux creates an http.Handler with the API routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// Milestone validates the query, runs the badge pipeline and writes the SVG.
func (h *Handler) Milestone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req, err := application.ParseMilestoneRequest(q.Get("owner"), q.Get("repo"), q.Get("milestone"), q.Get("logo"))
	if err != nil {
		metrics.IncBadgeRequest(metrics.OutcomeInvalid)
		writeText(w, http.StatusBadRequest, invalidInputMessage(err))
		return
	}

	badge, err := h.milestoneSvc.Generate(r.Context(), req)
	if err != nil {
		metrics.IncBadgeRequest(metrics.OutcomeError)
		h.logger.Error("failed to generate badge",
			"repo", req.FullName(),
			"milestone", req.Milestone,
			"error", err,
		)
		writeText(w, http.StatusInternalServerError, generationErrorMessage(err))
		return
	}

	if badge.Result.Achieved {
		metrics.IncBadgeRequest(metrics.OutcomeAchieved)
	} else {
		metrics.IncBadgeRequest(metrics.OutcomePending)
	}

	writeSVG(w, h.cacheControl, badge.SVG)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// invalidInputMessage maps a validation error to its 400 body.
func invalidInputMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidMilestone):
		return msgInvalidMilestone
	default:
		return msgMissingParameters
	}
}

// generationErrorMessage maps a pipeline error to its opaque 500 body.
func generationErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrUpstreamInconsistency):
		return msgStargazerData
	case errors.Is(err, model.ErrMalformedRecord):
		return msgDateNotFound
	default:
		return msgGenerationFailed
	}
}
