// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package api

import (
	"net/http"

	"github.com/taskgrid/taskgrid/internal/auth"
	"github.com/taskgrid/taskgrid/internal/logging"
	"github.com/taskgrid/taskgrid/internal/models"
)

// GetProfile returns the caller's account document.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(r.Context(), userID(r))
	if err != nil {
		respondStoreError(w, r, err, "User not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(user))
}

// GetUserProjects returns every project the caller belongs to, with
// resolved member profiles.
func (h *Handler) GetUserProjects(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.ListUserProjects(r.Context(), userID(r))
	if err != nil {
		respondStoreError(w, r, err, "User not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(summaries))
}

// UpdateProfile changes the caller's name, email and registration
// number. The avatar follows the email.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	avatar := auth.GravatarURL(req.Email)
	user, err := h.store.UpdateProfile(r.Context(), userID(r), req.Name, req.Email, avatar, req.RegistrationNumber)
	if err != nil {
		respondStoreError(w, r, err, "User not found", "Email or registration number already in use")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(user))
}

// ChangePassword replaces the caller's password hash.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
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
	if err := h.store.UpdatePasswordHash(r.Context(), userID(r), hash); err != nil {
		respondStoreError(w, r, err, "User not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success("Successfully Changed Password"))
}

// GetDeadlines returns cards across the caller's projects due on the
// requested calendar day.
func (h *Handler) GetDeadlines(w http.ResponseWriter, r *http.Request) {
	var req models.DeadlineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	date, err := models.ParseDeadline(req.Date)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.FailedFields([]models.FieldIssue{
			{Field: "date", Message: "Date must use the YYYY-MM-DD format"},
		}))
		return
	}

	items, err := h.store.DeadlinesOn(r.Context(), userID(r), date)
	if err != nil {
		respondStoreError(w, r, err, "User not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(items))
}
