// handlers/ai.go - Copy-suggestion endpoints proxied to the AI gateway
package handlers

import (
	"errors"
	"net/http"

	"github.com/noor-latif/foliocms/internal/ai"
)

// GenerateHeadline proxies a headline request to the gateway. Failures are
// reported once and abandoned; no retry, prior state untouched.
func (h *Handler) GenerateHeadline(w http.ResponseWriter, r *http.Request) {
	var req ai.HeadlineRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	headline, err := h.AI.GenerateHeadline(r.Context(), req)
	if err != nil {
		h.aiError(w, "generate headline", err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"headline": headline})
}

// RecommendSkills proxies a skill-recommendation request to the gateway
func (h *Handler) RecommendSkills(w http.ResponseWriter, r *http.Request) {
	var req ai.SkillsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	skills, err := h.AI.RecommendSkills(r.Context(), req)
	if err != nil {
		h.aiError(w, "recommend skills", err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string][]string{"skills": skills})
}

// GeneratePalette proxies a palette request. The gateway itself falls back
// to a fixed palette when unconfigured, so this never 502s for that case.
func (h *Handler) GeneratePalette(w http.ResponseWriter, r *http.Request) {
	var req ai.PaletteRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	palette, err := h.AI.GeneratePalette(r.Context(), req)
	if err != nil {
		h.aiError(w, "generate palette", err)
		return
	}
	h.respondJSON(w, http.StatusOK, palette)
}

func (h *Handler) aiError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ai.ErrUnavailable) {
		h.respondError(w, http.StatusServiceUnavailable, "AI gateway is not configured")
		return
	}
	h.Log.Error(op, "error", err)
	h.respondError(w, http.StatusBadGateway, "AI request failed")
}
