// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/internal/domain/types"
)

// Dependencies bundles everything the HTTP handlers need. Using an
// interface bundle keeps the handler layer loosely coupled to the service.
type Dependencies interface {
	AnalyticsDependencies
	EventDependencies
	StatsProvider
}

// Server wires HTTP routes for the analytics API.
type Server struct {
	engagementHandler *EngagementHandler
	visitsHandler     *VisitsHandler
	overviewHandler   *OverviewHandler
	eventsHandler     *EventsHandler
	statsHandler      *StatsHandler
	healthHandler     *HealthHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		engagementHandler: NewEngagementHandler(deps),
		visitsHandler:     NewVisitsHandler(deps),
		overviewHandler:   NewOverviewHandler(deps),
		eventsHandler:     NewEventsHandler(deps),
		statsHandler:      NewStatsHandler(deps),
		healthHandler:     NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/events", MetricsMiddleware(s.eventsHandler.HandlePostEvent, "events"))
	mux.HandleFunc("/analytics/hourly-engagement", MetricsMiddleware(s.engagementHandler.HandleGetHourlyEngagement, "hourly_engagement"))
	mux.HandleFunc("/analytics/visit-summary", MetricsMiddleware(s.visitsHandler.HandleGetVisitSummary, "visit_summary"))
	mux.HandleFunc("/analytics/overview", MetricsMiddleware(s.overviewHandler.HandleGetOverview, "overview"))
}

// eventRequest is the POST /events payload.
type eventRequest struct {
	EventID   string `json:"event_id,omitempty"`
	UserID    string `json:"user_id"`
	ArtistID  string `json:"artist_id"`
	EventType string `json:"event_type"`
	CreatedAt int64  `json:"created_at"`
}

func (e eventRequest) validate() error {
	switch {
	case e.UserID == "":
		return fmt.Errorf("%w: missing user_id", ErrBadRequest)
	case e.ArtistID == "":
		return fmt.Errorf("%w: missing artist_id", ErrBadRequest)
	case e.EventType == "":
		return fmt.Errorf("%w: missing event_type", ErrBadRequest)
	case e.CreatedAt <= 0:
		return fmt.Errorf("%w: created_at must be positive epoch milliseconds", ErrBadRequest)
	}
	return nil
}

// id returns the idempotency key: the caller's event ID when present,
// otherwise a deterministic content-derived key.
func (e eventRequest) id() string {
	if e.EventID != "" {
		return e.EventID
	}
	return fmt.Sprintf("%s_%s_%s_%d", e.UserID, e.ArtistID, e.EventType, e.CreatedAt)
}

func (e eventRequest) toModel() model.UserEvent {
	return model.UserEvent{
		UserID:    e.UserID,
		ArtistID:  e.ArtistID,
		EventType: model.ParseEventType(e.EventType),
		CreatedAt: e.CreatedAt,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Overview mirrors the combined response shape.
type Overview = types.Overview

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
