// handlers/contact.go - Contact form, submissions log and export
package handlers

import (
	"net/http"
	"strings"

	"github.com/noor-latif/foliocms/internal/models"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact appends a message to the submissions log and persists it
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Message == "" {
		h.respondError(w, http.StatusBadRequest, "name and message are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		h.respondError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	sub := h.State.AddSubmission(models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})

	if err := h.Store.AddSubmission(&sub); err != nil {
		// The in-memory log already has it; losing the durable copy is
		// logged but not surfaced to the visitor.
		h.Log.Error("persist submission", "error", err)
	}

	h.respondJSON(w, http.StatusAccepted, map[string]string{"status": "received"})
}

// ListSubmissions returns the durable submissions log in arrival order
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Store.ListSubmissions()
	if err != nil {
		h.Log.Error("list submissions", "error", err)
		h.respondError(w, http.StatusInternalServerError, "could not load submissions")
		return
	}
	if subs == nil {
		subs = []models.ContactSubmission{}
	}
	h.respondJSON(w, http.StatusOK, subs)
}

// Export serves the current snapshot as a JSON download
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-export.json"`)
	h.respondJSON(w, http.StatusOK, h.State.Snapshot())
}
