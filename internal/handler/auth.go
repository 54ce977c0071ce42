package handler

import (
	"net/http"
)

type registerRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	BaseCurrency string `json:"base_currency"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		h.respondError(w, http.StatusBadRequest, "username, email and a password of at least 8 characters are required")
		return
	}

	user, err := h.svc.Auth.Register(r.Context(), req.Username, req.Email, req.Password, req.BaseCurrency)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}
	h.respondJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Me returns the authenticated user's profile
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	user, err := h.svc.Auth.GetUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "user not found")
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}
