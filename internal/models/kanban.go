// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package models

// Kanban is a project's board container. Boards are embedded because
// they are small and always read together; cards are stored separately
// and referenced by ID so card edits do not rewrite the whole kanban.
type Kanban struct {
	ID     string  `json:"id"`
	Boards []Board `json:"boards"`
}

// Board is a named column holding an ordered list of card IDs. The slice
// position encodes the column order.
type Board struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	CardIDs []string `json:"cards"`
}

// FindBoard returns a pointer into Boards for the given board ID, or nil.
func (k *Kanban) FindBoard(boardID string) *Board {
	for i := range k.Boards {
		if k.Boards[i].ID == boardID {
			return &k.Boards[i]
		}
	}
	return nil
}

// RemoveBoard detaches a board and returns it. The second return is
// false when no board with that ID exists.
func (k *Kanban) RemoveBoard(boardID string) (Board, bool) {
	for i := range k.Boards {
		if k.Boards[i].ID == boardID {
			b := k.Boards[i]
			k.Boards = append(k.Boards[:i], k.Boards[i+1:]...)
			return b, true
		}
	}
	return Board{}, false
}

// RemoveCard drops a card reference from the board. Returns false if the
// card is not on the board.
func (b *Board) RemoveCard(cardID string) bool {
	for i, id := range b.CardIDs {
		if id == cardID {
			b.CardIDs = append(b.CardIDs[:i], b.CardIDs[i+1:]...)
			return true
		}
	}
	return false
}

// InsertCard places a card at the given index, clamping to the valid
// range. A negative index or one past the end appends.
func (b *Board) InsertCard(cardID string, index int) {
	if index < 0 || index > len(b.CardIDs) {
		index = len(b.CardIDs)
	}
	b.CardIDs = append(b.CardIDs, "")
	copy(b.CardIDs[index+1:], b.CardIDs[index:])
	b.CardIDs[index] = cardID
}

// KanbanView is the hydrated board tree returned to clients: the owning
// project's name and every referenced card resolved inline, in board
// order.
type KanbanView struct {
	ProjectName string      `json:"name"`
	KanbanID    string      `json:"kanbanId"`
	Boards      []BoardView `json:"boards"`
}

// BoardView is a board with its cards resolved.
type BoardView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}
