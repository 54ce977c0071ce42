package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/arrazka/lifeboard/internal/service"
)

// CreateDebt registers a debt record
func (h *Handler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req service.CreateDebtInput
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	debt, err := h.svc.Debts.CreateDebt(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, debt)
}

// ListDebts returns the user's debts
func (h *Handler) ListDebts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	debts, err := h.svc.Debts.ListDebts(r.Context(), userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list debts")
		return
	}
	h.respondJSON(w, http.StatusOK, debts)
}

// DebtSummary returns the aggregate debt view
func (h *Handler) DebtSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Debts.Summary(r.Context(), userID, h.baseCurrency(r, userID), time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to compute debt summary")
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

type debtPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	AccountID *uuid.UUID      `json:"account_id,omitempty"`
}

// RecordDebtPayment decrements a debt's balance
func (h *Handler) RecordDebtPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid debt id")
		return
	}

	var req debtPaymentRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	debt, err := h.svc.Debts.RecordPayment(r.Context(), userID, id, req.Amount, req.AccountID, time.Now())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, debt)
}

// DeleteDebt removes a debt
func (h *Handler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid debt id")
		return
	}

	if err := h.svc.Debts.DeleteDebt(r.Context(), userID, id); err != nil {
		h.respondError(w, http.StatusNotFound, "debt not found")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
