// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

/*
Package models defines the data structures for the Taskgrid application.

It contains the stored document types, the API request and response
structures, and the hydrated view types returned by read endpoints. It
serves as the single source of truth for data structure definitions.

Key Components:

  - User, Project, Kanban, Card: documents persisted in BadgerDB
  - APIResponse: standardized response envelope
  - KanbanView: the fully resolved board tree returned to clients
  - Request DTOs: one struct per mutating endpoint, with validation tags

Documents reference each other by ID rather than by embedding: a user
lists project IDs, a project points at its kanban, and each board holds
an ordered list of card IDs. The store layer resolves references inside
a single transaction when a hydrated view is requested.
*/
package models
