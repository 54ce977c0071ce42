package handler

import (
	"net/http"
	"time"
)

// Dashboard returns the aggregated landing-page view
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	dashboard, err := h.svc.Dashboard.Summary(r.Context(), userID, time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}
	h.respondJSON(w, http.StatusOK, dashboard)
}

// Health is the unauthenticated liveness probe
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
