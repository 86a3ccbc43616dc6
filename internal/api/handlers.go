// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

// Package api provides the HTTP handlers and Chi routing for the
// Taskgrid service.
package api

import (
	"net/http"

	"github.com/taskgrid/taskgrid/internal/auth"
	"github.com/taskgrid/taskgrid/internal/config"
	"github.com/taskgrid/taskgrid/internal/models"
	"github.com/taskgrid/taskgrid/internal/store"
)

// Handler holds the dependencies shared by all endpoint handlers.
type Handler struct {
	store *store.Store
	jwt   *auth.JWTManager
	cfg   *config.Config
}

// NewHandler creates a Handler.
func NewHandler(s *store.Store, jwt *auth.JWTManager, cfg *config.Config) *Handler {
	return &Handler{store: s, jwt: jwt, cfg: cfg}
}

// Health reports service liveness, including a store round-trip.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusInternalServerError, models.Failed("Server error"))
		return
	}
	respondJSON(w, http.StatusOK, models.Success(map[string]string{"status": "ok"}))
}

// userID extracts the authenticated user ID placed in the context by the
// auth middleware. The middleware guarantees presence on protected
// routes; an empty ID means a routing misconfiguration.
func userID(r *http.Request) string {
	id, _ := auth.UserIDFromContext(r.Context())
	return id
}
