package api

import (
	"context"
	"net/http"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/types"
)

// AnalyticsDependencies exposes the two analytics views.
type AnalyticsDependencies interface {
	HourlyEngagement(ctx context.Context) ([]types.HourlyScoreRow, error)
	VisitSummary(ctx context.Context) ([]types.VisitSummaryRow, error)
	Overview(ctx context.Context) (types.Overview, error)
}

// EngagementHandler serves the hourly engagement table.
type EngagementHandler struct {
	deps AnalyticsDependencies
}

// NewEngagementHandler creates an engagement handler.
func NewEngagementHandler(deps AnalyticsDependencies) *EngagementHandler {
	return &EngagementHandler{deps: deps}
}

// HandleGetHourlyEngagement handles GET /analytics/hourly-engagement.
func (h *EngagementHandler) HandleGetHourlyEngagement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.HourlyEngagement(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if rows == nil {
		rows = []types.HourlyScoreRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// VisitsHandler serves the visit summary table.
type VisitsHandler struct {
	deps AnalyticsDependencies
}

// NewVisitsHandler creates a visits handler.
func NewVisitsHandler(deps AnalyticsDependencies) *VisitsHandler {
	return &VisitsHandler{deps: deps}
}

// HandleGetVisitSummary handles GET /analytics/visit-summary.
func (h *VisitsHandler) HandleGetVisitSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.VisitSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if rows == nil {
		rows = []types.VisitSummaryRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// OverviewHandler serves both views in one response.
type OverviewHandler struct {
	deps AnalyticsDependencies
}

// NewOverviewHandler creates an overview handler.
func NewOverviewHandler(deps AnalyticsDependencies) *OverviewHandler {
	return &OverviewHandler{deps: deps}
}

// HandleGetOverview handles GET /analytics/overview.
func (h *OverviewHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	overview, err := h.deps.Overview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
