// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

// Package main is the entry point for the Taskgrid server.
//
// Taskgrid is a multi-tenant project and kanban board backend. Users
// register with email and password, create projects, invite teammates
// by access code, and organize work on per-project kanban boards.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered defaults, config.yaml, environment (Koanf v2)
//  2. Logging: structured zerolog output
//  3. Store: BadgerDB document store
//  4. Authentication: JWT token manager
//  5. HTTP server: Chi-routed JSON API
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, DB_PATH, JWT_SECRET, ...)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Required settings:
//   - JWT_SECRET: 32+ character secret for token signing
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits up to 10 seconds for in-flight
// requests, then closes the store.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskgrid/taskgrid/internal/api"
	"github.com/taskgrid/taskgrid/internal/auth"
	"github.com/taskgrid/taskgrid/internal/config"
	"github.com/taskgrid/taskgrid/internal/logging"
	"github.com/taskgrid/taskgrid/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting Taskgrid")

	s, err := store.Open(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("Failed to open store")
	}
	defer func() {
		if err := s.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close store")
		}
	}()

	jwt, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize token manager")
	}

	router := api.NewRouter(api.NewHandler(s, jwt, cfg))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Forced shutdown after timeout")
	}

	logging.Info().Msg("Taskgrid stopped gracefully")
}
