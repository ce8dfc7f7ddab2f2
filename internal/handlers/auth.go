// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"accelpress/internal/models"
	"accelpress/internal/session"
	"accelpress/internal/store"
)

// Auth groups the authentication and admin-account management handlers.
type Auth struct {
	sessions *session.Store
	admins   *store.AdminStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, admins *store.AdminStore) *Auth {
	return &Auth{sessions: sessions, admins: admins}
}

// loginRequest is the POST /api/admins/login payload.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse carries the session token and the account's public fields.
type loginResponse struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

// Login validates credentials and opens a session. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := a.admins.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if admin == nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := a.sessions.Create(r.Context(), w, &session.Data{
		AdminID:  admin.ID,
		Username: admin.Username,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Admin: admin})
}

// Logout destroys the caller's session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	writeMessage(w, http.StatusOK, "Logged out")
}

// ListAdmins returns all admin accounts (without password material).
func (a *Auth) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := a.admins.List(r.Context())
	if err != nil {
		slog.Error("list admins failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if admins == nil {
		admins = []models.Admin{}
	}
	writeJSON(w, http.StatusOK, admins)
}

// createAdminRequest is the POST /api/admins payload.
type createAdminRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAdmin registers a new admin account.
func (a *Auth) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	admin, err := a.admins.Create(r.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, store.ErrUsernameTaken) {
		writeError(w, http.StatusConflict, "Username already taken")
		return
	}
	if err != nil {
		slog.Error("create admin failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, admin)
}

// DeleteAdmin removes an admin account.
func (a *Auth) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Admin not found")
		return
	}

	deleted, err := a.admins.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete admin failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Admin not found")
		return
	}
	writeMessage(w, http.StatusOK, "Admin deleted")
}
