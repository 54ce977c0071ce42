package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/service"
)

// Services bundles everything the HTTP layer talks to
type Services struct {
	Auth         *service.AuthService
	Accounts     *service.AccountService
	Transactions *service.TransactionService
	Installments *service.InstallmentService
	Debts        *service.DebtService
	Prayers      *service.PrayerService
	Quran        *service.QuranService
	Documents    *service.DocumentService
	Tasks        *service.TaskService
	Reports      *service.ReportService
	Dashboard    *service.DashboardService
}

// Handler holds the HTTP endpoints
type Handler struct {
	svc Services
	log *logrus.Logger
}

func NewHandler(svc Services, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// respondJSON writes a JSON body with the given status code
func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// respondError writes an error body with the given status code
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses a request body into dst
func (h *Handler) decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// baseCurrency resolves the user's display currency
func (h *Handler) baseCurrency(r *http.Request, userID int64) string {
	user, err := h.svc.Auth.GetUser(r.Context(), userID)
	if err != nil {
		h.log.Warnf("Failed to resolve base currency for user %d: %v", userID, err)
		return "IDR"
	}
	return user.BaseCurrency
}
