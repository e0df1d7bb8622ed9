// handlers/upload.go - Local file upload endpoint
package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Characters outside this set are stripped from uploaded filenames, which
// also removes any path separators (traversal guard).
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Upload accepts one file in the multipart field "cover", stores it under
// the upload directory with a collision-resistant name and returns its URL.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("cover")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	name := storedFilename(header.Filename)

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		h.Log.Error("create upload dir", "error", err)
		h.respondError(w, http.StatusInternalServerError, "could not store file")
		return
	}

	dest, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		h.Log.Error("create upload file", "error", err)
		h.respondError(w, http.StatusInternalServerError, "could not store file")
		return
	}
	defer dest.Close()

	if _, err := io.Copy(dest, file); err != nil {
		h.Log.Error("write upload file", "error", err)
		h.respondError(w, http.StatusInternalServerError, "could not store file")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"filename": name,
		"url":      h.UploadURL + "/" + name,
	})
}

// storedFilename builds "<unixmilli>-<random>-<sanitized original>". The
// random element keeps two same-millisecond uploads of the same file apart.
func storedFilename(original string) string {
	base := unsafeChars.ReplaceAllString(filepath.Base(original), "")
	base = strings.Trim(base, ".")
	if base == "" {
		base = "file"
	}
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), suffix, base)
}
