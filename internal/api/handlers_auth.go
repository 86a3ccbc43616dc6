// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/taskgrid/taskgrid/internal/auth"
	"github.com/taskgrid/taskgrid/internal/logging"
	"github.com/taskgrid/taskgrid/internal/metrics"
	"github.com/taskgrid/taskgrid/internal/models"
	"github.com/taskgrid/taskgrid/internal/store"
)

// Register creates a new account and returns a signed token.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}
	if !h.checkPasswordLength(w, req.Password) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to hash password")
		respondJSON(w, http.StatusInternalServerError, models.Failed("Server error"))
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Avatar:       auth.GravatarURL(req.Email),
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		respondStoreError(w, r, err, "User not found", "An account with this email already exists")
		return
	}

	token, err := h.jwt.GenerateToken(user.ID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		respondJSON(w, http.StatusInternalServerError, models.Failed("Server error"))
		return
	}
	metrics.TokensIssued.Inc()

	respondJSON(w, http.StatusCreated, models.Success(models.TokenResult{Token: token}))
}

// Login verifies credentials and returns a signed token. Unknown email
// and wrong password produce the same response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.RecordAuthFailure("bad_credentials")
			respondJSON(w, http.StatusUnauthorized, models.Failed("Invalid credentials"))
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Login lookup failed")
		respondJSON(w, http.StatusInternalServerError, models.Failed("Server error"))
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		metrics.RecordAuthFailure("bad_credentials")
		respondJSON(w, http.StatusUnauthorized, models.Failed("Invalid credentials"))
		return
	}

	token, err := h.jwt.GenerateToken(user.ID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		respondJSON(w, http.StatusInternalServerError, models.Failed("Server error"))
		return
	}
	metrics.TokensIssued.Inc()

	respondJSON(w, http.StatusOK, models.Success(models.TokenResult{Token: token}))
}

// JWTValid confirms that the presented token is valid. The auth
// middleware has already rejected bad tokens, so reaching the handler
// means success.
func (h *Handler) JWTValid(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.Success(map[string]string{"id": userID(r)}))
}

// checkPasswordLength enforces the configured minimum. The DTO tags
// only bound the upper limit because the minimum is operator tunable.
func (h *Handler) checkPasswordLength(w http.ResponseWriter, password string) bool {
	minLen := h.cfg.Security.PasswordMinLength
	if len(password) >= minLen {
		return true
	}
	msg := fmt.Sprintf("Password must be at least %d characters", minLen)
	respondJSON(w, http.StatusBadRequest, models.FailedFields([]models.FieldIssue{
		{Field: "password", Message: msg},
	}))
	return false
}
