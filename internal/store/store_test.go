// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/taskgrid/taskgrid/internal/models"
)

// newTestStore opens an in-memory database for a single test.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("Failed to open BadgerDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewWithDB(db)
}

// createTestUser registers a user directly in the store.
func createTestUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$12$fakehash",
	}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return user
}

func TestCreateUser_AssignsIdentity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	if alice.ID == "" {
		t.Fatal("CreateUser() left ID empty")
	}
	if alice.CreatedAt.IsZero() {
		t.Error("CreateUser() left CreatedAt zero")
	}

	bob := createTestUser(t, s, "bob@example.com")
	if bob.ID == alice.ID {
		t.Fatalf("CreateUser() reused ID %q", bob.ID)
	}

	// The second registration must not touch the first document.
	got, err := s.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if got.ID != alice.ID {
		t.Errorf("GetUserByEmail() ID = %q, want %q", got.ID, alice.ID)
	}
}

func TestCreateUser_PersistsPasswordHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")

	byID, err := s.GetUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if byID.PasswordHash != "$2a$12$fakehash" {
		t.Errorf("GetUser() PasswordHash = %q, want stored hash", byID.PasswordHash)
	}

	byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if byEmail.PasswordHash != "$2a$12$fakehash" {
		t.Errorf("GetUserByEmail() PasswordHash = %q, want stored hash", byEmail.PasswordHash)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "alice@example.com")

	dup := &models.User{Name: "Other", Email: "alice@example.com"}
	if err := s.CreateUser(ctx, dup); !errors.Is(err, ErrConflict) {
		t.Errorf("CreateUser() error = %v, want ErrConflict", err)
	}
}

func TestCreateUser_DuplicateRegistrationNumber(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &models.User{Name: "A", Email: "a@example.com", RegistrationNumber: "R-100"}
	if err := s.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	second := &models.User{Name: "B", Email: "b@example.com", RegistrationNumber: "R-100"}
	if err := s.CreateUser(ctx, second); !errors.Is(err, ErrConflict) {
		t.Errorf("CreateUser() error = %v, want ErrConflict", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := createTestUser(t, s, "alice@example.com")

	t.Run("exact match", func(t *testing.T) {
		got, err := s.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail() error = %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("got user %s, want %s", got.ID, created.ID)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, err := s.GetUserByEmail(ctx, "ALICE@Example.COM")
		if err != nil {
			t.Fatalf("GetUserByEmail() error = %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("got user %s, want %s", got.ID, created.ID)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := s.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetUserByEmail() error = %v, want ErrNotFound", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	createTestUser(t, s, "bob@example.com")

	t.Run("email change reindexes", func(t *testing.T) {
		updated, err := s.UpdateProfile(ctx, alice.ID, "Alice B", "alice.b@example.com", "https://avatar/a", "")
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		if updated.Name != "Alice B" || updated.Email != "alice.b@example.com" {
			t.Errorf("unexpected profile: %+v", updated)
		}

		if _, err := s.GetUserByEmail(ctx, "alice@example.com"); !errors.Is(err, ErrNotFound) {
			t.Errorf("old email still resolvable, error = %v", err)
		}
		if _, err := s.GetUserByEmail(ctx, "alice.b@example.com"); err != nil {
			t.Errorf("new email not resolvable: %v", err)
		}
	})

	t.Run("taken email rejected", func(t *testing.T) {
		if _, err := s.UpdateProfile(ctx, alice.ID, "Alice", "bob@example.com", "", ""); !errors.Is(err, ErrConflict) {
			t.Errorf("UpdateProfile() error = %v, want ErrConflict", err)
		}
	})

	t.Run("registration number uniqueness", func(t *testing.T) {
		if _, err := s.UpdateProfile(ctx, alice.ID, "Alice", "alice.b@example.com", "", "R-7"); err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		if _, err := s.UpdateProfile(ctx, alice.ID, "Alice", "alice.b@example.com", "", "R-7"); err != nil {
			t.Fatalf("idempotent regno update error = %v", err)
		}

		bob, err := s.GetUserByEmail(ctx, "bob@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail() error = %v", err)
		}
		if _, err := s.UpdateProfile(ctx, bob.ID, "Bob", "bob@example.com", "", "R-7"); !errors.Is(err, ErrConflict) {
			t.Errorf("UpdateProfile() error = %v, want ErrConflict", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := s.UpdateProfile(ctx, "missing", "X", "x@example.com", "", ""); !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateProfile() error = %v, want ErrNotFound", err)
		}
	})
}

func TestUpdatePasswordHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")

	if err := s.UpdatePasswordHash(ctx, alice.ID, "$2a$12$newhash"); err != nil {
		t.Fatalf("UpdatePasswordHash() error = %v", err)
	}
	got, err := s.GetUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got.PasswordHash != "$2a$12$newhash" {
		t.Errorf("PasswordHash = %q", got.PasswordHash)
	}

	if err := s.UpdatePasswordHash(ctx, "missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdatePasswordHash() error = %v, want ErrNotFound", err)
	}
}

func TestCreateProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")

	project, err := s.CreateProject(ctx, alice.ID, "Apollo")
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	if len(project.Members) != 1 || project.Members[0] != alice.ID {
		t.Errorf("Members = %v, want just the creator", project.Members)
	}
	if project.AccessCode == "" {
		t.Error("expected an access code")
	}

	// Creator side of the membership.
	got, err := s.GetUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if !got.HasProject(project.ID) {
		t.Error("creator does not reference the new project")
	}

	// The kanban exists and is empty.
	view, err := s.GetKanbanView(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetKanbanView() error = %v", err)
	}
	if view.KanbanID != project.KanbanID {
		t.Errorf("KanbanID = %s, want %s", view.KanbanID, project.KanbanID)
	}
	if len(view.Boards) != 0 {
		t.Errorf("new kanban has %d boards, want 0", len(view.Boards))
	}
}

func TestCreateProject_DuplicateNamePerUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	if _, err := s.CreateProject(ctx, alice.ID, "Apollo"); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if _, err := s.CreateProject(ctx, alice.ID, "Apollo"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate name error = %v, want ErrConflict", err)
	}

	// Same name is fine for a different user.
	if _, err := s.CreateProject(ctx, bob.ID, "Apollo"); err != nil {
		t.Errorf("CreateProject() for other user error = %v", err)
	}
}

func TestJoinProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")
	project, err := s.CreateProject(ctx, alice.ID, "Apollo")
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	t.Run("valid code joins both sides", func(t *testing.T) {
		joined, err := s.JoinProject(ctx, bob.ID, project.AccessCode)
		if err != nil {
			t.Fatalf("JoinProject() error = %v", err)
		}
		if !joined.IsMember(bob.ID) {
			t.Error("joiner missing from project members")
		}

		gotBob, err := s.GetUser(ctx, bob.ID)
		if err != nil {
			t.Fatalf("GetUser() error = %v", err)
		}
		if !gotBob.HasProject(project.ID) {
			t.Error("joiner does not reference the project")
		}
	})

	t.Run("duplicate join rejected", func(t *testing.T) {
		if _, err := s.JoinProject(ctx, bob.ID, project.AccessCode); !errors.Is(err, ErrConflict) {
			t.Errorf("JoinProject() error = %v, want ErrConflict", err)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := s.JoinProject(ctx, bob.ID, uuid.NewString()); !errors.Is(err, ErrNotFound) {
			t.Errorf("JoinProject() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRemoveMember(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")
	project, _ := s.CreateProject(ctx, alice.ID, "Apollo")
	if _, err := s.JoinProject(ctx, bob.ID, project.AccessCode); err != nil {
		t.Fatalf("JoinProject() error = %v", err)
	}

	t.Run("removes both sides", func(t *testing.T) {
		updated, err := s.RemoveMember(ctx, project.ID, bob.ID)
		if err != nil {
			t.Fatalf("RemoveMember() error = %v", err)
		}
		if updated.IsMember(bob.ID) {
			t.Error("member still in project")
		}
		gotBob, err := s.GetUser(ctx, bob.ID)
		if err != nil {
			t.Fatalf("GetUser() error = %v", err)
		}
		if gotBob.HasProject(project.ID) {
			t.Error("member still references the project")
		}
	})

	t.Run("absent membership", func(t *testing.T) {
		if _, err := s.RemoveMember(ctx, project.ID, bob.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("RemoveMember() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("absent project", func(t *testing.T) {
		if _, err := s.RemoveMember(ctx, "missing", bob.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("RemoveMember() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRenameProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	project, _ := s.CreateProject(ctx, alice.ID, "Apollo")

	renamed, err := s.RenameProject(ctx, project.ID, "Artemis")
	if err != nil {
		t.Fatalf("RenameProject() error = %v", err)
	}
	if renamed.Name != "Artemis" {
		t.Errorf("Name = %q, want Artemis", renamed.Name)
	}

	if _, err := s.RenameProject(ctx, "missing", "X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RenameProject() error = %v, want ErrNotFound", err)
	}
}

func TestGetUserProjects(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	if _, err := s.CreateProject(ctx, alice.ID, "Apollo"); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if _, err := s.CreateProject(ctx, alice.ID, "Gemini"); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	got, err := s.GetUserProjects(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetUserProjects() error = %v", err)
	}
	if got.User.ID != alice.ID {
		t.Errorf("User.ID = %s, want %s", got.User.ID, alice.ID)
	}
	if len(got.Projects) != 2 {
		t.Errorf("got %d projects, want 2", len(got.Projects))
	}

	if _, err := s.GetUserProjects(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserProjects() error = %v, want ErrNotFound", err)
	}
}

func TestListUserProjects(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")
	apollo, _ := s.CreateProject(ctx, alice.ID, "Apollo")
	if _, err := s.JoinProject(ctx, bob.ID, apollo.AccessCode); err != nil {
		t.Fatalf("JoinProject() error = %v", err)
	}

	summaries, err := s.ListUserProjects(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListUserProjects() error = %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if len(summaries[0].MemberProfiles) != 2 {
		t.Errorf("Apollo has %d member profiles, want 2", len(summaries[0].MemberProfiles))
	}
	for _, profile := range summaries[0].MemberProfiles {
		if profile.ID == "" || profile.Name == "" {
			t.Errorf("incomplete profile %+v", profile)
		}
	}

	bobSummaries, err := s.ListUserProjects(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListUserProjects() error = %v", err)
	}
	if len(bobSummaries) != 1 || bobSummaries[0].Name != "Apollo" {
		t.Errorf("bob summaries = %+v, want just Apollo", bobSummaries)
	}
}

func TestGetProjectSummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice@example.com")
	project, _ := s.CreateProject(ctx, alice.ID, "Apollo")

	summary, err := s.GetProjectSummary(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetProjectSummary() error = %v", err)
	}
	if summary.ID != project.ID || len(summary.MemberProfiles) != 1 {
		t.Errorf("summary = %+v", summary)
	}

	if _, err := s.GetProjectSummary(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetProjectSummary() error = %v, want ErrNotFound", err)
	}
}
