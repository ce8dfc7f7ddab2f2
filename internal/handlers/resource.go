// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"accelpress/internal/store"
)

// Resource exposes the uniform REST operations for one content entity.
// Every entity shares this handler set; the store descriptor supplies the
// per-entity behaviour.
type Resource struct {
	res *store.Resource

	// AfterCreate, when set, runs on its own goroutine once a record has
	// been stored. Used for the contact-message email notification; its
	// failure never affects the HTTP response.
	AfterCreate func(ctx context.Context, rec store.Record)
}

// NewResource creates the handler group for one entity resource.
func NewResource(res *store.Resource) *Resource {
	return &Resource{res: res}
}

// Name returns the entity's URL path segment.
func (h *Resource) Name() string {
	return h.res.Descriptor().Name
}

// List responds with every record of the entity.
func (h *Resource) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.res.List(r.Context())
	if err != nil {
		slog.Error("list failed", "entity", h.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Get responds with a single record or a not-found error.
func (h *Resource) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w)
		return
	}

	rec, err := h.res.Get(r.Context(), id)
	if err != nil {
		slog.Error("get failed", "entity", h.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if rec == nil {
		h.notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Create inserts a record and responds with the stored row.
func (h *Resource) Create(w http.ResponseWriter, r *http.Request) {
	var rec store.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.res.Create(r.Context(), rec)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	if h.AfterCreate != nil {
		go func(rec store.Record) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			h.AfterCreate(ctx, rec)
		}(created)
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update fully replaces a record and responds with the stored row.
func (h *Resource) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w)
		return
	}

	var rec store.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.res.Update(r.Context(), id, rec)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a record and acknowledges, or reports not-found.
func (h *Resource) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w)
		return
	}

	deleted, err := h.res.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete failed", "entity", h.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		h.notFound(w)
		return
	}
	writeMessage(w, http.StatusOK, h.res.Descriptor().Label+" deleted")
}

// notFound writes the uniform not-found error for this entity.
func (h *Resource) notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, h.res.Descriptor().Label+" not found")
}

// writeStoreError maps a store write failure to the right status code.
func (h *Resource) writeStoreError(w http.ResponseWriter, err error) {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}
	slog.Error("write failed", "entity", h.Name(), "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
