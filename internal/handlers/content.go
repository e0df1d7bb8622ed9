// handlers/content.go - Public content and singleton-section updates
package handlers

import (
	"net/http"

	"github.com/patrickmn/go-cache"

	"github.com/noor-latif/foliocms/internal/models"
)

// GetPortfolio serves the full content snapshot, read-through cached
func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	if data, found := h.cache.Get(portfolioCacheKey); found {
		h.respondJSON(w, http.StatusOK, data)
		return
	}

	snapshot := h.State.Snapshot()
	h.cache.Set(portfolioCacheKey, snapshot, cache.DefaultExpiration)
	h.respondJSON(w, http.StatusOK, snapshot)
}

// GetPresets serves the three static preset catalogs
func (h *Handler) GetPresets(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.Catalog)
}

// UpdateHero replaces the hero section
func (h *Handler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var hero models.HeroContent
	if err := h.decodeJSON(r, &hero); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.State.UpdateHero(hero)
	h.respondJSON(w, http.StatusOK, hero)
}

// UpdateAbout replaces the about section
func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var about models.AboutContent
	if err := h.decodeJSON(r, &about); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, svc := range about.Services {
		if !svc.Icon.Valid() {
			h.respondError(w, http.StatusBadRequest, "unknown icon: "+string(svc.Icon))
			return
		}
	}
	h.State.UpdateAbout(about)
	h.respondJSON(w, http.StatusOK, about)
}

// UpdateSkills replaces the whole skills list
func (h *Handler) UpdateSkills(w http.ResponseWriter, r *http.Request) {
	var categories []models.SkillCategory
	if err := h.decodeJSON(r, &categories); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, cat := range categories {
		for _, skill := range cat.Skills {
			if !skill.Icon.Valid() {
				h.respondError(w, http.StatusBadRequest, "unknown icon: "+string(skill.Icon))
				return
			}
		}
	}
	h.State.UpdateSkills(categories)
	h.respondJSON(w, http.StatusOK, categories)
}
