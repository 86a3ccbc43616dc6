// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package store

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/taskgrid/taskgrid/internal/models"
)

// GetKanbanView returns the hydrated board tree for a project: the
// project name and every referenced card resolved inline in board
// order. Dangling card references are skipped.
func (s *Store) GetKanbanView(ctx context.Context, projectID string) (*models.KanbanView, error) {
	var view models.KanbanView
	err := s.view(func(txn *badger.Txn) error {
		var project models.Project
		if err := getJSON(txn, projectKey(projectID), &project); err != nil {
			return err
		}
		var kanban models.Kanban
		if err := getJSON(txn, kanbanKey(project.KanbanID), &kanban); err != nil {
			return err
		}

		view = models.KanbanView{
			ProjectName: project.Name,
			KanbanID:    kanban.ID,
			Boards:      make([]models.BoardView, 0, len(kanban.Boards)),
		}
		for _, board := range kanban.Boards {
			bv := models.BoardView{
				ID:    board.ID,
				Name:  board.Name,
				Cards: make([]models.Card, 0, len(board.CardIDs)),
			}
			for _, cardID := range board.CardIDs {
				var card models.Card
				if err := getJSON(txn, cardKey(cardID), &card); err != nil {
					if errors.Is(err, ErrNotFound) {
						continue
					}
					return err
				}
				bv.Cards = append(bv.Cards, card)
			}
			view.Boards = append(view.Boards, bv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// CreateBoard appends a new empty board and returns the updated kanban.
func (s *Store) CreateBoard(ctx context.Context, kanbanID, name string) (*models.Kanban, error) {
	var kanban models.Kanban
	err := s.update(func(txn *badger.Txn) error {
		if err := getJSON(txn, kanbanKey(kanbanID), &kanban); err != nil {
			return err
		}
		kanban.Boards = append(kanban.Boards, models.Board{
			ID:      uuid.NewString(),
			Name:    name,
			CardIDs: []string{},
		})
		return setJSON(txn, kanbanKey(kanbanID), &kanban)
	})
	if err != nil {
		return nil, err
	}
	return &kanban, nil
}

// UpdateBoard renames a board.
func (s *Store) UpdateBoard(ctx context.Context, kanbanID, boardID, name string) (*models.Kanban, error) {
	var kanban models.Kanban
	err := s.update(func(txn *badger.Txn) error {
		if err := getJSON(txn, kanbanKey(kanbanID), &kanban); err != nil {
			return err
		}
		board := kanban.FindBoard(boardID)
		if board == nil {
			return ErrNotFound
		}
		board.Name = name
		return setJSON(txn, kanbanKey(kanbanID), &kanban)
	})
	if err != nil {
		return nil, err
	}
	return &kanban, nil
}

// DeleteBoard removes a board and deletes every card it references in
// the same transaction, so no orphaned card documents survive.
func (s *Store) DeleteBoard(ctx context.Context, kanbanID, boardID string) error {
	return s.update(func(txn *badger.Txn) error {
		var kanban models.Kanban
		if err := getJSON(txn, kanbanKey(kanbanID), &kanban); err != nil {
			return err
		}
		board, ok := kanban.RemoveBoard(boardID)
		if !ok {
			return ErrNotFound
		}
		for _, cardID := range board.CardIDs {
			if err := txn.Delete([]byte(cardKey(cardID))); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return setJSON(txn, kanbanKey(kanbanID), &kanban)
	})
}
