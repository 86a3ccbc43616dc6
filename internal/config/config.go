// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

// Package config provides layered configuration loading via Koanf v2.
//
// Precedence (highest wins): environment variables > config file > defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Taskgrid server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds BadgerDB settings.
type DatabaseConfig struct {
	// Path is the directory for the BadgerDB value log and LSM tree.
	Path string `koanf:"path"`

	// InMemory runs the store without disk persistence. Used by tests
	// and throwaway development environments.
	InMemory bool `koanf:"in_memory"`
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	// JWTSecret signs bearer tokens. Minimum 32 characters.
	JWTSecret string `koanf:"jwt_secret"`

	// SessionTimeout is the validity window of issued tokens.
	SessionTimeout time.Duration `koanf:"session_timeout"`

	// PasswordMinLength is the minimum accepted password length at
	// registration and password change.
	PasswordMinLength int `koanf:"password_min_length"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would prevent the
// server from operating safely. Called once after loading.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters, got %d", len(c.Security.JWTSecret))
	}
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("session timeout must be positive")
	}
	if c.Security.PasswordMinLength < 1 {
		return fmt.Errorf("password minimum length must be positive")
	}
	if !c.Database.InMemory && c.Database.Path == "" {
		return fmt.Errorf("database path is required when not running in-memory")
	}
	return nil
}
