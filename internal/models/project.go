// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package models

// Project is a workspace shared by its members. Joining requires the
// project's access code. The creator is simply the first member.
type Project struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Members    []string `json:"members"`
	AccessCode string   `json:"accessCode"`
	KanbanID   string   `json:"kanban"`
}

// IsMember reports whether the user belongs to the project.
func (p *Project) IsMember(userID string) bool {
	for _, id := range p.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// RemoveMember drops a member. Returns false if the user is not a member.
func (p *Project) RemoveMember(userID string) bool {
	for i, id := range p.Members {
		if id == userID {
			p.Members = append(p.Members[:i], p.Members[i+1:]...)
			return true
		}
	}
	return false
}

// ProjectSummary is a project with the resolved public profiles of its
// members.
type ProjectSummary struct {
	Project
	MemberProfiles []PublicProfile `json:"memberProfiles"`
}

// UserProjects is the payload of the project-listing endpoints: the
// caller's profile and every project they belong to.
type UserProjects struct {
	User     User      `json:"user"`
	Projects []Project `json:"projects"`
}
