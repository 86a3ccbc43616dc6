// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package models

// RegisterRequest creates a new account. The password minimum length is
// enforced by the handler against the configured value.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest changes the caller's name, email and optional
// registration number.
type UpdateProfileRequest struct {
	Name               string `json:"name" validate:"required,max=100"`
	Email              string `json:"email" validate:"required,email"`
	RegistrationNumber string `json:"registrationNumber" validate:"omitempty,max=40"`
}

// ChangePasswordRequest replaces the caller's password.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,max=72"`
}

// DeadlineRequest asks for all cards across the caller's projects due on
// the given calendar day.
type DeadlineRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateProjectRequest creates a project and its kanban.
type CreateProjectRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// JoinProjectRequest joins a project by access code.
type JoinProjectRequest struct {
	AccessCode string `json:"accessCode" validate:"required"`
}

// RemoveMemberRequest removes a member from a project.
type RemoveMemberRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}

// UpdateProjectRequest renames a project.
type UpdateProjectRequest struct {
	ProjectID   string `json:"projectId" validate:"required"`
	ProjectName string `json:"projectName" validate:"required,max=100"`
}

// CreateBoardRequest adds a board to a kanban.
type CreateBoardRequest struct {
	KanbanID string `json:"kanbanId" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
}

// DeleteBoardRequest removes a board and every card it references.
type DeleteBoardRequest struct {
	KanbanID string `json:"kanbanId" validate:"required"`
	BoardID  string `json:"boardId" validate:"required"`
}

// UpdateBoardRequest renames a board.
type UpdateBoardRequest struct {
	KanbanID string `json:"kanbanId" validate:"required"`
	BoardID  string `json:"boardId" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
}

// CreateCardRequest adds a card to a board.
type CreateCardRequest struct {
	KanbanID string `json:"kanbanId" validate:"required"`
	BoardID  string `json:"boardId" validate:"required"`
	Title    string `json:"title" validate:"required,max=200"`
}

// DeleteCardRequest removes a card from a board.
type DeleteCardRequest struct {
	KanbanID string `json:"kanbanId" validate:"required"`
	BoardID  string `json:"boardId" validate:"required"`
	CardID   string `json:"cardId" validate:"required"`
}

// MoveCardRequest moves the card at sourceCardIndex on the source board
// to targetCardIndex on the target board. Source and target may be the
// same board.
type MoveCardRequest struct {
	KanbanID        string `json:"kanbanId" validate:"required"`
	SourceBoardID   string `json:"sourceBoardId" validate:"required"`
	TargetBoardID   string `json:"targetBoardId" validate:"required"`
	SourceCardIndex int    `json:"sourceCardIndex" validate:"min=0"`
	TargetCardIndex int    `json:"targetCardIndex" validate:"min=0"`
}

// UpdateCardTitleRequest renames a card.
type UpdateCardTitleRequest struct {
	CardID string `json:"cardId" validate:"required"`
	Title  string `json:"title" validate:"required,max=200"`
}

// UpdateCardDescriptionRequest replaces a card's description.
type UpdateCardDescriptionRequest struct {
	CardID      string `json:"cardId" validate:"required"`
	Description string `json:"description" validate:"required,max=2000"`
}

// UpdateCardDeadlineRequest sets a card's deadline.
type UpdateCardDeadlineRequest struct {
	CardID   string `json:"cardId" validate:"required"`
	Deadline string `json:"deadline" validate:"required,datetime=2006-01-02"`
}

// AddLabelRequest attaches a label to a card.
type AddLabelRequest struct {
	CardID string `json:"cardId" validate:"required"`
	Title  string `json:"title" validate:"required,max=50"`
	Color  string `json:"color" validate:"required,max=30"`
}

// DeleteLabelRequest removes a label from a card.
type DeleteLabelRequest struct {
	CardID  string `json:"cardId" validate:"required"`
	LabelID string `json:"labelId" validate:"required"`
}

// AddTaskRequest adds a checklist task to a card.
type AddTaskRequest struct {
	CardID string `json:"cardId" validate:"required"`
	Title  string `json:"title" validate:"required,max=200"`
}

// DeleteTaskRequest removes a checklist task from a card.
type DeleteTaskRequest struct {
	CardID string `json:"cardId" validate:"required"`
	TaskID string `json:"taskId" validate:"required"`
}

// ToggleTaskRequest flips a task's completion state.
type ToggleTaskRequest struct {
	CardID string `json:"cardId" validate:"required"`
	TaskID string `json:"taskId" validate:"required"`
}
