// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package auth

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/taskgrid/taskgrid/internal/logging"
	"github.com/taskgrid/taskgrid/internal/metrics"
	"github.com/taskgrid/taskgrid/internal/models"
)

// TokenHeader is the request header carrying the JWT.
const TokenHeader = "x-auth-token"

type contextKey string

const userIDKey contextKey = "auth_user_id"

// ContextWithUserID returns a context carrying the authenticated user ID.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user ID, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Middleware authenticates requests by validating the x-auth-token
// header and placing the user ID in the request context.
func (m *JWTManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			metrics.RecordAuthFailure("missing_token")
			unauthorized(w, r, "No token, authorization denied")
			return
		}

		claims, err := m.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			metrics.RecordAuthFailure("invalid_token")
			unauthorized(w, r, "Token is not valid")
			return
		}

		ctx := ContextWithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(models.Failed(message)); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
	}
}
