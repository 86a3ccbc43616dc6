// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package store

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/taskgrid/taskgrid/internal/models"
)

func cardKey(id string) string { return cardKeyPrefix + id }

// CreateCard creates a card document and appends its reference to the
// board in one transaction.
func (s *Store) CreateCard(ctx context.Context, kanbanID, boardID, title string) (*models.Card, error) {
	card := &models.Card{
		ID:     uuid.NewString(),
		Title:  title,
		Labels: []models.Label{},
		Tasks:  []models.Task{},
	}
	err := s.update(func(txn *badger.Txn) error {
		var kanban models.Kanban
		if err := getJSON(txn, kanbanKey(kanbanID), &kanban); err != nil {
			return err
		}
		board := kanban.FindBoard(boardID)
		if board == nil {
			return ErrNotFound
		}
		board.CardIDs = append(board.CardIDs, card.ID)

		if err := setJSON(txn, cardKey(card.ID), card); err != nil {
			return err
		}
		return setJSON(txn, kanbanKey(kanbanID), &kanban)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteCard removes a card reference from its board and deletes the
// card document in one transaction. ErrNotFound when the reference is
// not on that board.
func (s *Store) DeleteCard(ctx context.Context, kanbanID, boardID, cardID string) error {
	return s.update(func(txn *badger.Txn) error {
		var kanban models.Kanban
		if err := getJSON(txn, kanbanKey(kanbanID), &kanban); err != nil {
			return err
		}
		board := kanban.FindBoard(boardID)
		if board == nil {
			return ErrNotFound
		}
		if !board.RemoveCard(cardID) {
			return ErrNotFound
		}
		if err := txn.Delete([]byte(cardKey(cardID))); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return setJSON(txn, kanbanKey(kanbanID), &kanban)
	})
}

// MoveCard moves the card at the source index to the target position,
// possibly on another board, in one transaction. The target index is
// clamped to the destination board's length; an out-of-range source
// index is ErrNotFound.
func (s *Store) MoveCard(ctx context.Context, req models.MoveCardRequest) error {
	return s.update(func(txn *badger.Txn) error {
		var kanban models.Kanban
		if err := getJSON(txn, kanbanKey(req.KanbanID), &kanban); err != nil {
			return err
		}

		source := kanban.FindBoard(req.SourceBoardID)
		if source == nil {
			return ErrNotFound
		}
		target := source
		if req.TargetBoardID != req.SourceBoardID {
			target = kanban.FindBoard(req.TargetBoardID)
			if target == nil {
				return ErrNotFound
			}
		}

		if req.SourceCardIndex < 0 || req.SourceCardIndex >= len(source.CardIDs) {
			return ErrNotFound
		}
		cardID := source.CardIDs[req.SourceCardIndex]
		source.CardIDs = append(source.CardIDs[:req.SourceCardIndex], source.CardIDs[req.SourceCardIndex+1:]...)
		target.InsertCard(cardID, req.TargetCardIndex)

		return setJSON(txn, kanbanKey(req.KanbanID), &kanban)
	})
}

// mutateCard loads a card, applies fn, and stores the result.
func (s *Store) mutateCard(cardID string, fn func(*models.Card) error) (*models.Card, error) {
	var card models.Card
	err := s.update(func(txn *badger.Txn) error {
		if err := getJSON(txn, cardKey(cardID), &card); err != nil {
			return err
		}
		if err := fn(&card); err != nil {
			return err
		}
		return setJSON(txn, cardKey(cardID), &card)
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCardTitle renames a card.
func (s *Store) UpdateCardTitle(ctx context.Context, cardID, title string) (*models.Card, error) {
	return s.mutateCard(cardID, func(card *models.Card) error {
		card.Title = title
		return nil
	})
}

// UpdateCardDescription replaces a card's description.
func (s *Store) UpdateCardDescription(ctx context.Context, cardID, description string) (*models.Card, error) {
	return s.mutateCard(cardID, func(card *models.Card) error {
		card.Description = description
		return nil
	})
}

// UpdateCardDeadline sets the card's deadline date.
func (s *Store) UpdateCardDeadline(ctx context.Context, cardID string, deadline time.Time) (*models.Card, error) {
	return s.mutateCard(cardID, func(card *models.Card) error {
		card.DeadlineDate = &deadline
		return nil
	})
}

// AddLabel attaches a new label to a card.
func (s *Store) AddLabel(ctx context.Context, cardID, title, color string) (*models.Card, error) {
	return s.mutateCard(cardID, func(card *models.Card) error {
		card.Labels = append(card.Labels, models.Label{
			ID:    uuid.NewString(),
			Title: title,
			Color: color,
		})
		return nil
	})
}

// DeleteLabel removes a label from a card.
func (s *Store) DeleteLabel(ctx context.Context, cardID, labelID string) (*models.Card, error) {
	return s.mutateCard(cardID, func(card *models.Card) error {
		if !card.RemoveLabel(labelID) {
			return ErrNotFound
		}
		return nil
	})
}

// AddTask adds a checklist task to a card.
func (s *Store) AddTask(ctx context.Context, cardID, title string) (*models.Card, error) {
	return s.mutateCard(cardID, func(card *models.Card) error {
		card.Tasks = append(card.Tasks, models.Task{
			ID:    uuid.NewString(),
			Title: title,
		})
		return nil
	})
}

// DeleteTask removes a checklist task from a card.
func (s *Store) DeleteTask(ctx context.Context, cardID, taskID string) (*models.Card, error) {
	return s.mutateCard(cardID, func(card *models.Card) error {
		if !card.RemoveTask(taskID) {
			return ErrNotFound
		}
		return nil
	})
}

// ToggleTask flips a task's completion state.
func (s *Store) ToggleTask(ctx context.Context, cardID, taskID string) (*models.Card, error) {
	return s.mutateCard(cardID, func(card *models.Card) error {
		task := card.FindTask(taskID)
		if task == nil {
			return ErrNotFound
		}
		task.Completed = !task.Completed
		return nil
	})
}

// DeadlinesOn returns every card across the user's projects whose
// deadline falls on the given calendar day.
func (s *Store) DeadlinesOn(ctx context.Context, userID string, date time.Time) ([]models.DeadlineItem, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	items := []models.DeadlineItem{}
	err := s.view(func(txn *badger.Txn) error {
		var user models.User
		if err := getJSON(txn, userKey(userID), &user); err != nil {
			return err
		}

		for _, projectID := range user.Projects {
			var project models.Project
			if err := getJSON(txn, projectKey(projectID), &project); err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				return err
			}
			var kanban models.Kanban
			if err := getJSON(txn, kanbanKey(project.KanbanID), &kanban); err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				return err
			}

			for _, board := range kanban.Boards {
				for _, cardID := range board.CardIDs {
					var card models.Card
					if err := getJSON(txn, cardKey(cardID), &card); err != nil {
						if errors.Is(err, ErrNotFound) {
							continue
						}
						return err
					}
					if card.DeadlineDate == nil || !card.DeadlineDate.Equal(day) {
						continue
					}
					items = append(items, models.DeadlineItem{
						ProjectName: project.Name,
						CardTitle:   card.Title,
						Date:        *card.DeadlineDate,
					})
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
