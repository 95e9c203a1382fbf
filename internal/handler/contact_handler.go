package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
	"github.com/noievoi/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles the public contact form and the admin message inbox.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact (public).
// name, email, and message are required; message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name_required")
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email_required")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "message_required")
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		respondError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		respondError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	respondJSON(w, http.StatusCreated, msg)
}

// List handles GET /api/contact (admin). Messages come back newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	respondJSON(w, http.StatusOK, messages)
}

// Get handles GET /api/contact/{id} (admin).
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	msg, err := h.contactService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "get_failed")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// PatchStatus handles PATCH /api/contact/{id} (admin). Status is the only
// writable field; any other payload field is ignored.
func (h *ContactHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if !model.ValidContactStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	if err := h.contactService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	msg, err := h.contactService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "get_failed")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// Delete handles DELETE /api/contact/{id} (admin). Hard delete.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
