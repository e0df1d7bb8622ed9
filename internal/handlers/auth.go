// handlers/auth.go - Login, recovery and session middleware
package handlers

import (
	"net/http"
	"strings"
)

type loginRequest struct {
	Password string `json:"password"`
}

type recoverRequest struct {
	Answer string `json:"answer"`
}

// Login checks the shared secret and issues a session token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.State.Login(req.Password) {
		h.respondError(w, http.StatusUnauthorized, "wrong password")
		return
	}

	token, err := h.Sessions.Issue()
	if err != nil {
		h.Log.Error("issue session token", "error", err)
		h.respondError(w, http.StatusInternalServerError, "could not start session")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Recover answers the recovery question. On a correct answer the original
// flow discloses the plaintext password and logs the caller in; it only
// works when the deployment runs with a plaintext secret.
func (h *Handler) Recover(w http.ResponseWriter, r *http.Request) {
	var req recoverRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, password := h.State.RecoverPassword(req.Answer)
	if !ok {
		h.respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false})
		return
	}

	token, err := h.Sessions.Issue()
	if err != nil {
		h.Log.Error("issue session token", "error", err)
		h.respondError(w, http.StatusInternalServerError, "could not start session")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"password": password,
		"token":    token,
	})
}

// Logout revokes the presented token and clears the session flag
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		h.Sessions.Revoke(token)
	}
	h.State.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// RequireAdmin guards the admin routes with a valid session token
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.respondError(w, http.StatusUnauthorized, "authorization required")
			return
		}
		if err := h.Sessions.Validate(token); err != nil {
			h.respondError(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
