// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package models

import (
	"testing"
	"time"
)

func TestBoardInsertCard(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		cardID  string
		index   int
		want    []string
	}{
		{"empty board", nil, "c1", 0, []string{"c1"}},
		{"front", []string{"c1", "c2"}, "c3", 0, []string{"c3", "c1", "c2"}},
		{"middle", []string{"c1", "c2"}, "c3", 1, []string{"c1", "c3", "c2"}},
		{"end", []string{"c1", "c2"}, "c3", 2, []string{"c1", "c2", "c3"}},
		{"index past end clamps to append", []string{"c1"}, "c2", 99, []string{"c1", "c2"}},
		{"negative index clamps to append", []string{"c1"}, "c2", -1, []string{"c1", "c2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Board{CardIDs: append([]string(nil), tt.initial...)}
			b.InsertCard(tt.cardID, tt.index)
			if len(b.CardIDs) != len(tt.want) {
				t.Fatalf("got %v, want %v", b.CardIDs, tt.want)
			}
			for i := range tt.want {
				if b.CardIDs[i] != tt.want[i] {
					t.Errorf("position %d: got %q, want %q", i, b.CardIDs[i], tt.want[i])
				}
			}
		})
	}
}

func TestKanbanRemoveBoard(t *testing.T) {
	k := Kanban{Boards: []Board{{ID: "b1", Name: "Todo"}, {ID: "b2", Name: "Done"}}}

	b, ok := k.RemoveBoard("b1")
	if !ok {
		t.Fatal("expected board to be removed")
	}
	if b.Name != "Todo" {
		t.Errorf("removed board name = %q, want %q", b.Name, "Todo")
	}
	if len(k.Boards) != 1 || k.Boards[0].ID != "b2" {
		t.Errorf("remaining boards = %v", k.Boards)
	}

	if _, ok := k.RemoveBoard("missing"); ok {
		t.Error("expected removal of unknown board to fail")
	}
}

func TestBoardRemoveCard(t *testing.T) {
	b := Board{CardIDs: []string{"c1", "c2", "c3"}}

	if !b.RemoveCard("c2") {
		t.Fatal("expected card to be removed")
	}
	if len(b.CardIDs) != 2 || b.CardIDs[0] != "c1" || b.CardIDs[1] != "c3" {
		t.Errorf("remaining cards = %v", b.CardIDs)
	}
	if b.RemoveCard("c2") {
		t.Error("expected second removal to fail")
	}
}

func TestProjectMembership(t *testing.T) {
	p := Project{Members: []string{"u1", "u2"}}

	if !p.IsMember("u1") {
		t.Error("expected u1 to be a member")
	}
	if p.IsMember("u3") {
		t.Error("expected u3 to not be a member")
	}
	if !p.RemoveMember("u2") {
		t.Error("expected u2 removal to succeed")
	}
	if p.RemoveMember("u2") {
		t.Error("expected repeated removal to fail")
	}
}

func TestUserProjects(t *testing.T) {
	u := User{Projects: []string{"p1"}}

	if !u.HasProject("p1") {
		t.Error("expected p1 reference")
	}
	if !u.RemoveProject("p1") {
		t.Error("expected p1 removal to succeed")
	}
	if u.HasProject("p1") {
		t.Error("expected p1 reference to be gone")
	}
}

func TestCardTasksAndLabels(t *testing.T) {
	c := Card{
		Tasks:  []Task{{ID: "t1", Title: "write docs"}},
		Labels: []Label{{ID: "l1", Title: "bug", Color: "#ff0000"}},
	}

	if task := c.FindTask("t1"); task == nil || task.Title != "write docs" {
		t.Fatalf("FindTask(t1) = %v", task)
	}
	if c.FindTask("t2") != nil {
		t.Error("expected unknown task lookup to return nil")
	}
	if !c.RemoveTask("t1") || len(c.Tasks) != 0 {
		t.Errorf("RemoveTask left %v", c.Tasks)
	}
	if !c.RemoveLabel("l1") || len(c.Labels) != 0 {
		t.Errorf("RemoveLabel left %v", c.Labels)
	}
	if c.RemoveLabel("l1") {
		t.Error("expected repeated label removal to fail")
	}
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"valid date", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"leap day", "2028-02-29", time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"wrong layout", "15/03/2026", time.Time{}, true},
		{"empty", "", time.Time{}, true},
		{"timestamp rejected", "2026-03-15T10:00:00Z", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeadline(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDeadline(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDeadline(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
