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

func projectKey(id string) string { return projectKeyPrefix + id }
func codeKey(code string) string  { return codeKeyPrefix + code }
func kanbanKey(id string) string  { return kanbanKeyPrefix + id }

// CreateProject creates a project, its empty kanban, the access-code
// index entry, and the creator's membership reference in one
// transaction. Returns ErrConflict when the user already has a project
// with the same name.
func (s *Store) CreateProject(ctx context.Context, userID, name string) (*models.Project, error) {
	project := &models.Project{
		ID:         uuid.NewString(),
		Name:       name,
		Members:    []string{userID},
		AccessCode: uuid.NewString(),
		KanbanID:   uuid.NewString(),
	}
	kanban := &models.Kanban{
		ID:     project.KanbanID,
		Boards: []models.Board{},
	}

	err := s.update(func(txn *badger.Txn) error {
		user, err := getUser(txn, userID)
		if err != nil {
			return err
		}

		for _, existingID := range user.Projects {
			var existing models.Project
			if err := getJSON(txn, projectKey(existingID), &existing); err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				return err
			}
			if existing.Name == name {
				return ErrConflict
			}
		}

		user.Projects = append(user.Projects, project.ID)

		if err := putUser(txn, user); err != nil {
			return err
		}
		if err := setJSON(txn, projectKey(project.ID), project); err != nil {
			return err
		}
		if err := setJSON(txn, kanbanKey(kanban.ID), kanban); err != nil {
			return err
		}
		return txn.Set([]byte(codeKey(project.AccessCode)), []byte(project.ID))
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject loads a project by ID.
func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := s.view(func(txn *badger.Txn) error {
		return getJSON(txn, projectKey(id), &project)
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// JoinProject resolves an access code and adds the user to the project,
// updating both the project's member list and the user's project list in
// one transaction. A user who is already a member gets ErrConflict.
func (s *Store) JoinProject(ctx context.Context, userID, accessCode string) (*models.Project, error) {
	var project models.Project
	err := s.update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(codeKey(accessCode)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		var projectID string
		if err := item.Value(func(val []byte) error {
			projectID = string(val)
			return nil
		}); err != nil {
			return err
		}

		if err := getJSON(txn, projectKey(projectID), &project); err != nil {
			return err
		}
		if project.IsMember(userID) {
			return ErrConflict
		}

		user, err := getUser(txn, userID)
		if err != nil {
			return err
		}
		if user.HasProject(project.ID) {
			return ErrConflict
		}

		project.Members = append(project.Members, userID)
		user.Projects = append(user.Projects, project.ID)

		if err := setJSON(txn, projectKey(project.ID), &project); err != nil {
			return err
		}
		return putUser(txn, user)
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// RemoveMember removes a member from a project. Both sides of the
// membership are updated in one transaction. An absent project or
// membership returns ErrNotFound.
func (s *Store) RemoveMember(ctx context.Context, projectID, memberID string) (*models.Project, error) {
	var project models.Project
	err := s.update(func(txn *badger.Txn) error {
		if err := getJSON(txn, projectKey(projectID), &project); err != nil {
			return err
		}
		if !project.RemoveMember(memberID) {
			return ErrNotFound
		}

		member, err := getUser(txn, memberID)
		if err != nil {
			return err
		}
		member.RemoveProject(projectID)

		if err := putUser(txn, member); err != nil {
			return err
		}
		return setJSON(txn, projectKey(projectID), &project)
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// RenameProject changes a project's name.
func (s *Store) RenameProject(ctx context.Context, projectID, name string) (*models.Project, error) {
	var project models.Project
	err := s.update(func(txn *badger.Txn) error {
		if err := getJSON(txn, projectKey(projectID), &project); err != nil {
			return err
		}
		project.Name = name
		return setJSON(txn, projectKey(projectID), &project)
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetUserProjects returns the user's profile and every project they
// belong to. Dangling project references are skipped.
func (s *Store) GetUserProjects(ctx context.Context, userID string) (*models.UserProjects, error) {
	result := &models.UserProjects{Projects: []models.Project{}}
	err := s.view(func(txn *badger.Txn) error {
		if err := getJSON(txn, userKey(userID), &result.User); err != nil {
			return err
		}
		for _, projectID := range result.User.Projects {
			var project models.Project
			if err := getJSON(txn, projectKey(projectID), &project); err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				return err
			}
			result.Projects = append(result.Projects, project)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// projectSummary resolves the public profiles of a project's members.
// Dangling member references are skipped.
func projectSummary(txn *badger.Txn, project models.Project) (models.ProjectSummary, error) {
	summary := models.ProjectSummary{Project: project, MemberProfiles: []models.PublicProfile{}}
	for _, memberID := range project.Members {
		var member models.User
		if err := getJSON(txn, userKey(memberID), &member); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return summary, err
		}
		summary.MemberProfiles = append(summary.MemberProfiles, member.Public())
	}
	return summary, nil
}

// GetProjectSummary loads a project with its members' public profiles.
func (s *Store) GetProjectSummary(ctx context.Context, projectID string) (*models.ProjectSummary, error) {
	var summary models.ProjectSummary
	err := s.view(func(txn *badger.Txn) error {
		var project models.Project
		if err := getJSON(txn, projectKey(projectID), &project); err != nil {
			return err
		}
		var err error
		summary, err = projectSummary(txn, project)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListUserProjects returns summaries of every project the user belongs
// to, each with the resolved public profiles of its members.
func (s *Store) ListUserProjects(ctx context.Context, userID string) ([]models.ProjectSummary, error) {
	summaries := []models.ProjectSummary{}
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
			summary, err := projectSummary(txn, project)
			if err != nil {
				return err
			}
			summaries = append(summaries, summary)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
