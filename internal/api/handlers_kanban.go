// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskgrid/taskgrid/internal/models"
)

// GetKanban returns the fully hydrated board tree for a project.
func (h *Handler) GetKanban(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	view, err := h.store.GetKanbanView(r.Context(), projectID)
	if err != nil {
		respondStoreError(w, r, err, "Project not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(view))
}

// CreateBoard appends a board to a kanban.
func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBoardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	kanban, err := h.store.CreateBoard(r.Context(), req.KanbanID, req.Name)
	if err != nil {
		respondStoreError(w, r, err, "Kanban not found", "")
		return
	}
	respondJSON(w, http.StatusCreated, models.Success(kanban))
}

// DeleteBoard removes a board and deletes every card it references.
func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteBoardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	if err := h.store.DeleteBoard(r.Context(), req.KanbanID, req.BoardID); err != nil {
		respondStoreError(w, r, err, "Board not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success("Successfully Deleted Board"))
}

// UpdateBoard renames a board.
func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBoardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	kanban, err := h.store.UpdateBoard(r.Context(), req.KanbanID, req.BoardID, req.Name)
	if err != nil {
		respondStoreError(w, r, err, "Board not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(kanban))
}

// CreateCard adds a card to the end of a board.
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	card, err := h.store.CreateCard(r.Context(), req.KanbanID, req.BoardID, req.Title)
	if err != nil {
		respondStoreError(w, r, err, "Board not found", "")
		return
	}
	respondJSON(w, http.StatusCreated, models.Success(card))
}

// DeleteCard removes a card from its board and deletes the card
// document.
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	if err := h.store.DeleteCard(r.Context(), req.KanbanID, req.BoardID, req.CardID); err != nil {
		respondStoreError(w, r, err, "Card not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success("Successfully Deleted Card"))
}

// MoveCard relocates a card by position between boards, or reorders it
// within one.
func (h *Handler) MoveCard(w http.ResponseWriter, r *http.Request) {
	var req models.MoveCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	if err := h.store.MoveCard(r.Context(), req); err != nil {
		respondStoreError(w, r, err, "Board or card not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success("Successfully Moved Card"))
}

// UpdateCardTitle renames a card.
func (h *Handler) UpdateCardTitle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCardTitleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	card, err := h.store.UpdateCardTitle(r.Context(), req.CardID, req.Title)
	if err != nil {
		respondStoreError(w, r, err, "Card not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(card))
}

// UpdateCardDescription replaces a card's description.
func (h *Handler) UpdateCardDescription(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCardDescriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	card, err := h.store.UpdateCardDescription(r.Context(), req.CardID, req.Description)
	if err != nil {
		respondStoreError(w, r, err, "Card not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(card))
}

// UpdateCardDeadline sets a card's deadline date.
func (h *Handler) UpdateCardDeadline(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCardDeadlineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	deadline, err := models.ParseDeadline(req.Deadline)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.FailedFields([]models.FieldIssue{
			{Field: "deadline", Message: "Deadline must use the YYYY-MM-DD format"},
		}))
		return
	}

	card, err := h.store.UpdateCardDeadline(r.Context(), req.CardID, deadline)
	if err != nil {
		respondStoreError(w, r, err, "Card not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(card))
}

// AddLabel attaches a label to a card.
func (h *Handler) AddLabel(w http.ResponseWriter, r *http.Request) {
	var req models.AddLabelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	card, err := h.store.AddLabel(r.Context(), req.CardID, req.Title, req.Color)
	if err != nil {
		respondStoreError(w, r, err, "Card not found", "")
		return
	}
	respondJSON(w, http.StatusCreated, models.Success(card))
}

// DeleteLabel removes a label from a card.
func (h *Handler) DeleteLabel(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteLabelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	card, err := h.store.DeleteLabel(r.Context(), req.CardID, req.LabelID)
	if err != nil {
		respondStoreError(w, r, err, "Card or label not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(card))
}

// AddTask appends a checklist task to a card.
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req models.AddTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	card, err := h.store.AddTask(r.Context(), req.CardID, req.Title)
	if err != nil {
		respondStoreError(w, r, err, "Card not found", "")
		return
	}
	respondJSON(w, http.StatusCreated, models.Success(card))
}

// DeleteTask removes a checklist task from a card.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	card, err := h.store.DeleteTask(r.Context(), req.CardID, req.TaskID)
	if err != nil {
		respondStoreError(w, r, err, "Card or task not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(card))
}

// ToggleTask flips a task between completed and pending.
func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	card, err := h.store.ToggleTask(r.Context(), req.CardID, req.TaskID)
	if err != nil {
		respondStoreError(w, r, err, "Card or task not found", "")
		return
	}
	respondJSON(w, http.StatusOK, models.Success(card))
}
