// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadMemory is the in-memory threshold for multipart parsing;
// larger files spill to temp storage.
const maxUploadMemory = 32 << 20

// uploadCategories maps the upload endpoint segment to the directory the
// file lands in under the static mount.
var uploadCategories = map[string]string{
	"team-image":       "team",
	"case-study-image": "case-studies",
	"style-hero-image": "style",
	"popup-image":      "popup",
	"blog-image":       "blog",
}

// Uploads stores multipart file uploads on local disk and serves back
// relative URLs under the /uploads static mount.
type Uploads struct {
	dir string
}

// NewUploads creates an upload handler rooted at the given directory.
func NewUploads(dir string) *Uploads {
	return &Uploads{dir: dir}
}

// Upload accepts exactly one file under the multipart field "image" and
// responds with the stored file's relative URL.
func (u *Uploads) Upload(w http.ResponseWriter, r *http.Request) {
	sub, ok := uploadCategories[chi.URLParam(r, "category")]
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown upload category")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	url, err := u.Save(sub, file, header.Filename)
	if err != nil {
		slog.Error("upload save failed", "category", sub, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Save writes an uploaded file into the category subdirectory under a
// collision-resistant name (timestamp + random suffix, original extension
// preserved) and returns the relative URL. The directory is created on
// first use.
func (u *Uploads) Save(sub string, file multipart.File, original string) (string, error) {
	dir := filepath.Join(u.dir, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("upload mkdir: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
		filepath.Ext(original),
	)

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("upload create: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("upload write: %w", err)
	}

	return "/uploads/" + sub + "/" + name, nil
}
