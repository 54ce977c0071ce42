package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// UploadDocument stores a multipart file in the vault
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := h.svc.Documents.Upload(r.Context(), userID, header.Filename, contentType, header.Size, file)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, doc)
}

// ListDocuments returns the user's vault entries
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	docs, err := h.svc.Documents.ListDocuments(r.Context(), userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	h.respondJSON(w, http.StatusOK, docs)
}

// DocumentDownloadURL returns a presigned link for one document
func (h *Handler) DocumentDownloadURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	url, err := h.svc.Documents.DownloadURL(r.Context(), userID, id)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

// DeleteDocument removes a document from the vault
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	if err := h.svc.Documents.Delete(r.Context(), userID, id); err != nil {
		h.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
