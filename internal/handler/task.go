package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type createTaskRequest struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

type setTaskDoneRequest struct {
	Done bool `json:"done"`
}

// CreateTask adds a to-do item
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.svc.Tasks.CreateTask(r.Context(), userID, req.Title, req.DueDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, task)
}

// ListTasks returns the user's tasks
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	tasks, err := h.svc.Tasks.ListTasks(r.Context(), userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}
	h.respondJSON(w, http.StatusOK, tasks)
}

// SetTaskDone toggles a task's done flag
func (h *Handler) SetTaskDone(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req setTaskDoneRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Tasks.SetDone(r.Context(), userID, id, req.Done); err != nil {
		h.respondError(w, http.StatusNotFound, "task not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"done": req.Done})
}

// DeleteTask removes a task
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.svc.Tasks.DeleteTask(r.Context(), userID, id); err != nil {
		h.respondError(w, http.StatusNotFound, "task not found")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
