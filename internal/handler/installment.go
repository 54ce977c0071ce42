package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/arrazka/lifeboard/internal/service"
)

// CreatePlan opens a new installment plan
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req service.CreatePlanInput
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.svc.Installments.CreatePlan(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, plan)
}

// ListPlans returns the user's plans with derived figures
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	plans, err := h.svc.Installments.ListPlans(r.Context(), userID, h.baseCurrency(r, userID), time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list plans")
		return
	}
	h.respondJSON(w, http.StatusOK, plans)
}

// GetPlan returns one plan with its schedule
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	plan, err := h.svc.Installments.GetPlan(r.Context(), userID, id, h.baseCurrency(r, userID), time.Now())
	if err != nil {
		h.respondError(w, http.StatusNotFound, "plan not found")
		return
	}
	h.respondJSON(w, http.StatusOK, plan)
}

type payInstallmentRequest struct {
	RecordExpense bool `json:"record_expense"`
}

// PayInstallment marks the next unpaid installment as paid
func (h *Handler) PayInstallment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	var req payInstallmentRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.svc.Installments.PayNext(r.Context(), userID, id, req.RecordExpense, h.baseCurrency(r, userID), time.Now())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, plan)
}

// DeletePlan removes a plan and its schedule
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	if err := h.svc.Installments.DeletePlan(r.Context(), userID, id); err != nil {
		h.respondError(w, http.StatusNotFound, "plan not found")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
