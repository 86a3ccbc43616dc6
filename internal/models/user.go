// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package models

import "time"

// User is a registered account. PasswordHash is excluded from JSON so it
// never reaches API clients; the store persists it through its own
// document type.
type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	Avatar             string    `json:"avatar"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`

	// Projects holds the IDs of projects the user owns or has joined,
	// in join order. Membership is kept in sync with Project.Members.
	Projects []string `json:"projects"`
}

// PublicProfile is the subset of user fields exposed to other members.
type PublicProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Public returns the user's public profile.
func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// HasProject reports whether the user already references the project.
func (u *User) HasProject(projectID string) bool {
	for _, id := range u.Projects {
		if id == projectID {
			return true
		}
	}
	return false
}

// RemoveProject drops a project reference. Returns false if absent.
func (u *User) RemoveProject(projectID string) bool {
	for i, id := range u.Projects {
		if id == projectID {
			u.Projects = append(u.Projects[:i], u.Projects[i+1:]...)
			return true
		}
	}
	return false
}
