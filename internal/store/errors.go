// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package store

import "errors"

// Sentinel errors returned by store operations. Handlers map these to
// HTTP status codes.
var (
	// ErrNotFound is returned when a document, or an element inside a
	// document, does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an operation violates a uniqueness or
	// membership rule, such as registering a taken email or joining a
	// project twice.
	ErrConflict = errors.New("conflict")
)
