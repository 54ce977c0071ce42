package handler

import (
	"net/http"
	"strconv"
	"time"
)

type quranSessionRequest struct {
	Date     *time.Time `json:"date,omitempty"` // defaults to today
	Surah    int        `json:"surah"`
	AyahFrom int        `json:"ayah_from"`
	AyahTo   int        `json:"ayah_to"`
	Pages    int        `json:"pages"`
}

// LogQuranSession appends a reading session
func (h *Handler) LogQuranSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req quranSessionRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	session, err := h.svc.Quran.LogSession(r.Context(), userID, date, req.Surah, req.AyahFrom, req.AyahTo, req.Pages)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, session)
}

// ListQuranSessions returns recent reading sessions
func (h *Handler) ListQuranSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sessions, err := h.svc.Quran.ListSessions(r.Context(), userID, limit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	h.respondJSON(w, http.StatusOK, sessions)
}

// QuranProgress returns the last position and weekly volume
func (h *Handler) QuranProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	progress, err := h.svc.Quran.Progress(r.Context(), userID, time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to compute progress")
		return
	}
	h.respondJSON(w, http.StatusOK, progress)
}
