// handlers/theme.go - Theme and settings merge endpoints
package handlers

import (
	"net/http"

	"github.com/noor-latif/foliocms/internal/models"
	"github.com/noor-latif/foliocms/internal/state"
)

// PatchTheme shallow-merges a theme patch; only supplied keys change
func (h *Handler) PatchTheme(w http.ResponseWriter, r *http.Request) {
	var patch state.ThemePatch
	if err := h.decodeJSON(r, &patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.State.UpdateThemeSettings(patch)
	h.respondJSON(w, http.StatusOK, h.State.Snapshot().Theme)
}

// PatchColors replaces the four site colors
func (h *Handler) PatchColors(w http.ResponseWriter, r *http.Request) {
	var colors models.ThemeColors
	if err := h.decodeJSON(r, &colors); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.State.UpdateColorTheme(colors)
	h.respondJSON(w, http.StatusOK, colors)
}

// PatchHeroBackground replaces the hero background configuration
func (h *Handler) PatchHeroBackground(w http.ResponseWriter, r *http.Request) {
	var bg models.HeroBackground
	if err := h.decodeJSON(r, &bg); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.State.UpdateHeroBackground(bg)
	h.respondJSON(w, http.StatusOK, bg)
}

// PatchSettings shallow-merges the app settings. Preset names must exist
// in the catalogs when supplied.
func (h *Handler) PatchSettings(w http.ResponseWriter, r *http.Request) {
	var patch state.SettingsPatch
	if err := h.decodeJSON(r, &patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.Layout != nil && h.Catalog.LayoutByName(*patch.Layout) == nil {
		h.respondError(w, http.StatusBadRequest, "unknown layout preset: "+*patch.Layout)
		return
	}
	if patch.UIStyle != nil && h.Catalog.UIStyleByName(*patch.UIStyle) == nil {
		h.respondError(w, http.StatusBadRequest, "unknown UI style preset: "+*patch.UIStyle)
		return
	}
	h.State.UpdateAppSettings(patch)
	h.respondJSON(w, http.StatusOK, h.State.Snapshot().Settings)
}
