// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package models

import "time"

// DeadlineLayout is the wire format for card deadlines.
const DeadlineLayout = "2006-01-02"

// Card is a work item on a board. Labels and tasks are embedded because
// they have no identity outside the card.
type Card struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DeadlineDate *time.Time `json:"deadlineDate,omitempty"`
	Labels       []Label    `json:"labels"`
	Tasks        []Task     `json:"tasks"`
}

// Label is a colored tag attached to a card.
type Label struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// Task is a checklist item on a card.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// FindTask returns a pointer into Tasks for the given task ID, or nil.
func (c *Card) FindTask(taskID string) *Task {
	for i := range c.Tasks {
		if c.Tasks[i].ID == taskID {
			return &c.Tasks[i]
		}
	}
	return nil
}

// RemoveTask drops a task. Returns false if absent.
func (c *Card) RemoveTask(taskID string) bool {
	for i := range c.Tasks {
		if c.Tasks[i].ID == taskID {
			c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLabel drops a label. Returns false if absent.
func (c *Card) RemoveLabel(labelID string) bool {
	for i := range c.Labels {
		if c.Labels[i].ID == labelID {
			c.Labels = append(c.Labels[:i], c.Labels[i+1:]...)
			return true
		}
	}
	return false
}

// ParseDeadline parses a wire-format deadline and normalizes it to
// midnight UTC so calendar-day comparisons are stable across time zones.
func ParseDeadline(s string) (time.Time, error) {
	t, err := time.Parse(DeadlineLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
