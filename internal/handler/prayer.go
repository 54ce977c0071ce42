package handler

import (
	"net/http"
	"time"
)

type prayerLogRequest struct {
	Date    *time.Time `json:"date,omitempty"` // defaults to today
	Fajr    bool       `json:"fajr"`
	Dhuhr   bool       `json:"dhuhr"`
	Asr     bool       `json:"asr"`
	Maghrib bool       `json:"maghrib"`
	Isha    bool       `json:"isha"`
}

// UpsertPrayerLog writes the prayer marks for a date
func (h *Handler) UpsertPrayerLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req prayerLogRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	log, err := h.svc.Prayers.UpsertLog(r.Context(), userID, date, req.Fajr, req.Dhuhr, req.Asr, req.Maghrib, req.Isha)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to save prayer log")
		return
	}
	h.respondJSON(w, http.StatusOK, log)
}

// TodayPrayerLog returns today's prayer marks
func (h *Handler) TodayPrayerLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	log, err := h.svc.Prayers.GetLog(r.Context(), userID, time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load prayer log")
		return
	}
	h.respondJSON(w, http.StatusOK, log)
}

// PrayerStats returns completion stats for the past 30 days
func (h *Handler) PrayerStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	today := time.Now()
	stats, err := h.svc.Prayers.Stats(r.Context(), userID, today.AddDate(0, 0, -29), today)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to compute prayer stats")
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}
