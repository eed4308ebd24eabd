package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
)

// EventDependencies defines what event ingestion needs from the service.
type EventDependencies interface {
	// SeenAndRecord atomically checks and records an event ID.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord releases an event ID after a failed ingest.
	Unrecord(ctx context.Context, id string)

	// Enqueue submits an event for async persistence. Returns false on
	// backpressure.
	Enqueue(ctx context.Context, e model.UserEvent) bool
}

// EventsHandler handles event ingestion requests.
type EventsHandler struct {
	deps EventDependencies
}

// NewEventsHandler creates an events handler.
func NewEventsHandler(deps EventDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandlePostEvent handles POST /events.
func (h *EventsHandler) HandlePostEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	id := req.id()
	if h.deps.SeenAndRecord(r.Context(), id) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	if ok := h.deps.Enqueue(r.Context(), req.toModel()); !ok {
		// Roll back the seen mark so the event can be retried.
		h.deps.Unrecord(r.Context(), id)
		writeError(w, http.StatusTooManyRequests, "backpressure", ErrBackpressure)
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Duplicate: false})
}
