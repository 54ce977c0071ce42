package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type recordTransactionRequest struct {
	AccountID  uuid.UUID       `json:"account_id"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Category   string          `json:"category"`
	Note       string          `json:"note"`
	OccurredAt *time.Time      `json:"occurred_at,omitempty"`
}

// RecordTransaction handles income/expense entry
func (h *Handler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req recordTransactionRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	transaction, err := h.svc.Transactions.RecordTransaction(r.Context(), userID,
		req.AccountID, req.Amount, req.Type, req.Category, req.Note, occurredAt)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, transaction)
}

type transferRequest struct {
	FromAccountID uuid.UUID       `json:"from_account_id"`
	ToAccountID   uuid.UUID       `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note"`
	OccurredAt    *time.Time      `json:"occurred_at,omitempty"`
}

// Transfer moves money between two of the user's accounts
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req transferRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	legs, err := h.svc.Transactions.Transfer(r.Context(), userID,
		req.FromAccountID, req.ToAccountID, req.Amount, req.Note, occurredAt)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, legs)
}

// ListTransactions returns one month of transactions; defaults to the
// current month, override with ?year=&month=
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	year, month := yearMonthParams(r)

	txs, err := h.svc.Transactions.ListByMonth(r.Context(), userID, year, month)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, txs)
}

// ListAccountTransactions returns the recent transactions of one account
func (h *Handler) ListAccountTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	accountID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid account id")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	txs, err := h.svc.Transactions.ListByAccount(r.Context(), userID, accountID, limit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, txs)
}

// MonthlySummary returns income/expense/net for one month
func (h *Handler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	year, month := yearMonthParams(r)

	summary, err := h.svc.Transactions.MonthlySummary(r.Context(), userID, year, month)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

// DeleteTransaction removes a transaction and reverses its balance effect
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.svc.Transactions.DeleteTransaction(r.Context(), userID, id); err != nil {
		h.respondError(w, http.StatusNotFound, "transaction not found")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

// yearMonthParams reads ?year= and ?month=, defaulting to the current month
func yearMonthParams(r *http.Request) (int, time.Month) {
	now := time.Now()
	year := now.Year()
	month := now.Month()
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}
