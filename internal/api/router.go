// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskgrid/taskgrid/internal/metrics"
	"github.com/taskgrid/taskgrid/internal/middleware"
	"github.com/taskgrid/taskgrid/internal/models"
)

// Router wires the handlers into a Chi mux.
type Router struct {
	handler *Handler
}

// NewRouter creates a Router around the given Handler.
func NewRouter(h *Handler) *Router {
	return &Router{handler: h}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.Security.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "x-auth-token"},
		MaxAge:         86400,
	}))

	r.Get("/api/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Auth endpoints carry strict per-IP limits to slow brute force.
	// Login is tighter still: 5 attempts per 5 minutes.
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.rateLimit(5, time.Minute))

		r.Post("/register", h.Register)
		r.With(router.rateLimit(5, 5*time.Minute)).Post("/login", h.Login)
		r.With(h.jwt.Middleware).Get("/jwtValid", h.JWTValid)
	})

	// Everything below requires a valid token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.rateLimit(h.cfg.Security.RateLimitReqs, h.cfg.Security.RateLimitWindow))
		r.Use(h.jwt.Middleware)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.GetProfile)
			r.Get("/projects", h.GetUserProjects)
			r.Post("/update", h.UpdateProfile)
			r.Post("/change-password", h.ChangePassword)
			r.Post("/get-deadlines", h.GetDeadlines)
		})

		r.Route("/api/project", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/create", h.CreateProject)
			r.Post("/join", h.JoinProject)
			r.Post("/removeMember", h.RemoveMember)
			r.Post("/update", h.UpdateProject)
			r.Get("/{projectId}", h.GetProject)
		})

		r.Route("/api/kanban", func(r chi.Router) {
			r.Get("/{projectId}", h.GetKanban)

			r.Post("/create/board", h.CreateBoard)
			r.Post("/delete/board", h.DeleteBoard)
			r.Post("/update/board", h.UpdateBoard)

			r.Post("/create/card", h.CreateCard)
			r.Post("/delete/card", h.DeleteCard)
			r.Post("/card/move", h.MoveCard)
			r.Post("/card/update/title", h.UpdateCardTitle)
			r.Post("/card/update/description", h.UpdateCardDescription)
			r.Post("/card/update/deadline", h.UpdateCardDeadline)

			r.Post("/card/labels/add", h.AddLabel)
			r.Post("/card/labels/delete", h.DeleteLabel)

			r.Post("/card/tasks/add", h.AddTask)
			r.Post("/card/tasks/delete", h.DeleteTask)
			r.Post("/card/tasks/toggle", h.ToggleTask)
		})
	})

	return r
}

// rateLimit returns a per-IP limiter with a JSON 429 response, or a
// no-op when limiting is disabled.
func (router *Router) rateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if router.handler.cfg.Security.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
			respondJSON(w, http.StatusTooManyRequests, models.Failed("Too many requests"))
		}),
	)
}
