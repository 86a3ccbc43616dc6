// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package models

import "time"

// Response status values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// APIResponse is the envelope every endpoint returns. Success responses
// carry Result; failures carry Message, or Errors for field-level
// validation problems.
type APIResponse struct {
	Status  string       `json:"status"`
	Result  any          `json:"result,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldIssue `json:"errors,omitempty"`
}

// FieldIssue is one validation failure tied to a request field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// Success wraps a payload in a success envelope.
func Success(result any) APIResponse {
	return APIResponse{Status: StatusSuccess, Result: result}
}

// Failed wraps a message in a failure envelope.
func Failed(message string) APIResponse {
	return APIResponse{Status: StatusFailed, Message: message}
}

// FailedFields wraps field-level validation issues in a failure envelope.
func FailedFields(issues []FieldIssue) APIResponse {
	return APIResponse{Status: StatusFailed, Errors: issues}
}

// TokenResult is the payload of register and login responses.
type TokenResult struct {
	Token string `json:"token"`
}

// DeadlineItem is one entry in the deadline-overview response: a card
// due on the requested calendar day and the project it lives in.
type DeadlineItem struct {
	ProjectName string    `json:"projectName"`
	CardTitle   string    `json:"cardTitle"`
	Date        time.Time `json:"date"`
}
