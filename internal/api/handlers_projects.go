// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskgrid/taskgrid/internal/models"
)

// ListProjects returns the caller's profile alongside the raw project
// documents it belongs to.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.GetUserProjects(r.Context(), userID(r))
	if err != nil {
		respondStoreError(w, r, err, "User not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(result))
}

// CreateProject creates a project with an empty kanban and a fresh
// access code. The caller becomes the first member.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	project, err := h.store.CreateProject(r.Context(), userID(r), req.Name)
	if err != nil {
		respondStoreError(w, r, err, "User not found", "You already have a project with this name")
		return
	}
	respondJSON(w, http.StatusCreated, models.Success(project))
}

// JoinProject adds the caller to the project identified by access code.
func (h *Handler) JoinProject(w http.ResponseWriter, r *http.Request) {
	var req models.JoinProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	project, err := h.store.JoinProject(r.Context(), userID(r), req.AccessCode)
	if err != nil {
		respondStoreError(w, r, err, "Project not found", "You are already a member of this project")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(project))
}

// RemoveMember drops a member from a project and the project from the
// member's list.
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	project, err := h.store.RemoveMember(r.Context(), req.ProjectID, req.UserID)
	if err != nil {
		respondStoreError(w, r, err, "Project or member not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(project))
}

// UpdateProject renames a project.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	project, err := h.store.RenameProject(r.Context(), req.ProjectID, req.ProjectName)
	if err != nil {
		respondStoreError(w, r, err, "Project not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(project))
}

// GetProject returns a single project with resolved member profiles.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	summary, err := h.store.GetProjectSummary(r.Context(), projectID)
	if err != nil {
		respondStoreError(w, r, err, "Project not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(summary))
}
