// handlers/entries.go - CRUD for the list-typed sections
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noor-latif/foliocms/internal/models"
)

// CreateExperience adds an entry; the server assigns the ID
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var exp models.Experience
	if err := h.decodeJSON(r, &exp); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created := h.State.AddExperience(exp)
	h.respondJSON(w, http.StatusCreated, created)
}

// UpdateExperience replaces the entry with the URL's ID.
// An absent ID is a silent no-op, matching the container semantics.
func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	var exp models.Experience
	if err := h.decodeJSON(r, &exp); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	exp.ID = chi.URLParam(r, "id")
	h.State.UpdateExperience(exp)
	h.respondJSON(w, http.StatusOK, exp)
}

// DeleteExperience removes the entry. Idempotent: 204 even when absent.
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	h.State.DeleteExperience(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// CreateEducation adds an entry; the server assigns the ID
func (h *Handler) CreateEducation(w http.ResponseWriter, r *http.Request) {
	var edu models.Education
	if err := h.decodeJSON(r, &edu); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created := h.State.AddEducation(edu)
	h.respondJSON(w, http.StatusCreated, created)
}

// UpdateEducation replaces the entry with the URL's ID
func (h *Handler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	var edu models.Education
	if err := h.decodeJSON(r, &edu); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	edu.ID = chi.URLParam(r, "id")
	h.State.UpdateEducation(edu)
	h.respondJSON(w, http.StatusOK, edu)
}

// DeleteEducation removes the entry. Idempotent.
func (h *Handler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	h.State.DeleteEducation(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// CreateProject adds a project; the server assigns the ID
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := h.decodeJSON(r, &p); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created := h.State.AddProject(p)
	h.respondJSON(w, http.StatusCreated, created)
}

// UpdateProject replaces the project with the URL's ID
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := h.decodeJSON(r, &p); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = chi.URLParam(r, "id")
	h.State.UpdateProject(p)
	h.respondJSON(w, http.StatusOK, p)
}

// DeleteProject removes the project. Idempotent.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	h.State.DeleteProject(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
