// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/taskgrid/taskgrid/internal/logging"
	"github.com/taskgrid/taskgrid/internal/models"
	"github.com/taskgrid/taskgrid/internal/store"
	"github.com/taskgrid/taskgrid/internal/validation"
)

// maxBodySize caps request bodies at 1 MiB.
const maxBodySize = 1 << 20

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// decodeJSON parses the request body into dst. Returns false after
// writing a 400 response when the body is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, models.Failed("Invalid request body"))
		return false
	}
	return true
}

// validateRequest validates a request DTO. Returns false after writing
// a 400 response listing the field errors.
func validateRequest(w http.ResponseWriter, req any) bool {
	verr := validation.ValidateStruct(req)
	if verr == nil {
		return true
	}

	issues := make([]models.FieldIssue, 0, len(verr.Fields()))
	for _, f := range verr.Fields() {
		issues = append(issues, models.FieldIssue{Field: f.Field, Message: f.Message})
	}
	respondJSON(w, http.StatusBadRequest, models.FailedFields(issues))
	return false
}

// respondStoreError maps store sentinel errors to HTTP responses.
// notFound and conflict are the client-facing messages for the two
// expected failures; anything else is logged and surfaced as a generic
// 500.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, notFound, conflict string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondJSON(w, http.StatusNotFound, models.Failed(notFound))
	case errors.Is(err, store.ErrConflict):
		respondJSON(w, http.StatusConflict, models.Failed(conflict))
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Store operation failed")
		respondJSON(w, http.StatusInternalServerError, models.Failed("Server error"))
	}
}
