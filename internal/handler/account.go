package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type createAccountRequest struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Currency       string          `json:"currency"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// CreateAccount handles account creation
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req createAccountRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.svc.Accounts.CreateAccount(r.Context(), userID, req.Name, req.Type, req.Currency, req.OpeningBalance)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, account)
}

// ListAccounts returns the user's accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	accounts, err := h.svc.Accounts.ListAccounts(r.Context(), userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list accounts")
		return
	}
	h.respondJSON(w, http.StatusOK, accounts)
}

// GetAccount returns one account
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	account, err := h.svc.Accounts.GetAccount(r.Context(), userID, id)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "account not found")
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}

// DeleteAccount removes an account
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := h.svc.Accounts.DeleteAccount(r.Context(), userID, id); err != nil {
		h.respondError(w, http.StatusNotFound, "account not found")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
