// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// AccelPress API. Reads are public; admin-mutating routes sit behind the
// session check. The two visitor submission endpoints (contact messages,
// program applications) accept unauthenticated creates.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"accelpress/internal/handlers"
	"accelpress/internal/middleware"
	"accelpress/internal/session"
)

// publicCreate lists the entities whose POST endpoint is open to site
// visitors rather than admins.
var publicCreate = map[string]bool{
	"contact-messages":     true,
	"program-applications": true,
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(
	sessions *session.Store,
	resources []*handlers.Resource,
	auth *handlers.Auth,
	settings *handlers.Settings,
	uploads *handlers.Uploads,
	uploadDir string,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessions))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Entity resources.
		for _, res := range resources {
			mountResource(r, res)
		}

		// Admin accounts and login.
		r.Route("/admins", func(r chi.Router) {
			r.Post("/login", auth.Login)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/logout", auth.Logout)
				r.Get("/", auth.ListAdmins)
				r.Post("/", auth.CreateAdmin)
				r.Delete("/{id}", auth.DeleteAdmin)
			})
		})

		// Singleton popup and style settings.
		r.Get("/popup", settings.GetPopup)
		r.With(middleware.RequireAuth).Post("/popup/update", settings.UpdatePopup)
		r.Get("/style-settings", settings.GetStyles)
		r.With(middleware.RequireAuth).Post("/style-settings/update", settings.UpdateStyles)

		// Running-text company ticker.
		r.Get("/running-text", settings.GetRunningText)
		r.With(middleware.RequireAuth).Put("/running-text", settings.PutRunningText)

		// File uploads.
		r.With(middleware.RequireAuth).Post("/uploads/{category}", uploads.Upload)
	})

	// Static serving of uploaded files.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	return r
}

// mountResource wires the five uniform operations for one entity.
// Reads are public; writes require a session, except the visitor
// submission entities whose create endpoint stays open.
func mountResource(r chi.Router, h *handlers.Resource) {
	r.Route("/"+h.Name(), func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		if publicCreate[h.Name()] {
			r.Post("/", h.Create)
		} else {
			r.With(middleware.RequireAuth).Post("/", h.Create)
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
