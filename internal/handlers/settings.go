// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"accelpress/internal/models"
	"accelpress/internal/store"
)

// Settings groups the popup, style, and running-text handlers.
type Settings struct {
	store   *store.SettingsStore
	uploads *Uploads
}

// NewSettings creates a new Settings handler group.
func NewSettings(st *store.SettingsStore, uploads *Uploads) *Settings {
	return &Settings{store: st, uploads: uploads}
}

// GetPopup returns the popup state; a zeroed record when never saved.
func (s *Settings) GetPopup(w http.ResponseWriter, r *http.Request) {
	popup, err := s.store.GetPopup(r.Context())
	if err != nil {
		slog.Error("get popup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, popup)
}

// UpdatePopup upserts the popup from a multipart form. An optional file
// under the "image" field replaces the stored image URL.
func (s *Settings) UpdatePopup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	popup := &models.Popup{
		Enabled:    r.FormValue("enabled") == "true",
		Title:      r.FormValue("title"),
		Message:    r.FormValue("message"),
		Image:      r.FormValue("image"),
		ButtonText: r.FormValue("buttonText"),
		ButtonURL:  r.FormValue("buttonUrl"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		url, err := s.uploads.Save("popup", file, header.Filename)
		if err != nil {
			slog.Error("popup image save failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		popup.Image = url
	}

	saved, err := s.store.SavePopup(r.Context(), popup)
	if err != nil {
		slog.Error("save popup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetStyles returns the style settings; a zeroed record when never saved.
func (s *Settings) GetStyles(w http.ResponseWriter, r *http.Request) {
	styles, err := s.store.GetStyles(r.Context())
	if err != nil {
		slog.Error("get styles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, styles)
}

// UpdateStyles upserts the style settings from a JSON body.
func (s *Settings) UpdateStyles(w http.ResponseWriter, r *http.Request) {
	var styles models.StyleSettings
	if err := json.NewDecoder(r.Body).Decode(&styles); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := s.store.SaveStyles(r.Context(), &styles)
	if err != nil {
		slog.Error("save styles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// runningTextPayload is the GET/PUT /api/running-text body.
type runningTextPayload struct {
	Companies []string `json:"companies"`
}

// GetRunningText returns the ordered company list.
func (s *Settings) GetRunningText(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.ListCompanies(r.Context())
	if err != nil {
		slog.Error("list companies failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, runningTextPayload{Companies: names})
}

// PutRunningText replaces the whole company list in one transaction.
func (s *Settings) PutRunningText(w http.ResponseWriter, r *http.Request) {
	var payload runningTextPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Companies == nil {
		writeError(w, http.StatusBadRequest, "companies is required")
		return
	}

	if err := s.store.ReplaceCompanies(r.Context(), payload.Companies); err != nil {
		slog.Error("replace companies failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	names, err := s.store.ListCompanies(r.Context())
	if err != nil {
		slog.Error("list companies failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, runningTextPayload{Companies: names})
}
