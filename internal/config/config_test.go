// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package config

import (
	"os"
	"testing"
	"time"
)

func validTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = "this_is_a_very_long_secret_key_with_32_plus_characters"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.Security.JWTSecret = "" },
			wantErr: true,
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *Config) { c.Security.JWTSecret = "too_short" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "negative session timeout",
			mutate:  func(c *Config) { c.Security.SessionTimeout = -time.Hour },
			wantErr: true,
		},
		{
			name:    "zero password min length",
			mutate:  func(c *Config) { c.Security.PasswordMinLength = 0 },
			wantErr: true,
		},
		{
			name: "missing db path",
			mutate: func(c *Config) {
				c.Database.Path = ""
				c.Database.InMemory = false
			},
			wantErr: true,
		},
		{
			name: "in-memory without path is fine",
			mutate: func(c *Config) {
				c.Database.Path = ""
				c.Database.InMemory = true
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "environment_provided_secret_key_with_32_chars!!")
	t.Setenv("HTTP_PORT", "8088")
	t.Setenv("DB_IN_MEMORY", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8088 {
		t.Errorf("Port = %d, want 8088", cfg.Server.Port)
	}
	if !cfg.Database.InMemory {
		t.Error("expected in-memory database")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "https://a.example" {
		t.Errorf("CORSOrigins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}
}

func TestLoad_MissingSecretFails(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error with no JWT secret configured")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"JWT_SECRET", "security.jwt_secret"},
		{"DB_PATH", "database.path"},
		{"LOG_FORMAT", "logging.format"},
		{"UNRELATED_VAR", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
