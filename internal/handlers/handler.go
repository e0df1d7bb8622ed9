// handlers/handler.go - HTTP handlers and shared helpers
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/noor-latif/foliocms/internal/ai"
	"github.com/noor-latif/foliocms/internal/logger"
	"github.com/noor-latif/foliocms/internal/presets"
	"github.com/noor-latif/foliocms/internal/session"
	"github.com/noor-latif/foliocms/internal/state"
	"github.com/noor-latif/foliocms/internal/store"
)

const portfolioCacheKey = "portfolio"

// Handler holds dependencies
type Handler struct {
	Log       *logger.Logger
	State     *state.Container
	Store     store.Store
	Sessions  *session.Manager
	AI        ai.Client
	Catalog   *presets.Catalog
	UploadDir string
	UploadURL string

	cache *cache.Cache
}

// New creates a Handler. The public portfolio response is served through a
// small read-through cache that every content mutation invalidates.
func New(log *logger.Logger, st *state.Container, db store.Store, sessions *session.Manager, aiClient ai.Client, catalog *presets.Catalog, uploadDir, uploadURL string) *Handler {
	h := &Handler{
		Log:       log,
		State:     st,
		Store:     db,
		Sessions:  sessions,
		AI:        aiClient,
		Catalog:   catalog,
		UploadDir: uploadDir,
		UploadURL: uploadURL,
		cache:     cache.New(5*time.Minute, 10*time.Minute),
	}
	st.Subscribe(func() {
		h.cache.Delete(portfolioCacheKey)
	})
	return h
}

// Health is the liveness endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			h.Log.Error("encode response", "error", err)
		}
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) decodeJSON(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}
