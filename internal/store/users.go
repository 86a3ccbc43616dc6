// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/taskgrid/taskgrid/internal/models"
)

func userKey(id string) string     { return userKeyPrefix + id }
func emailKey(email string) string { return userEmailKeyPrefix + strings.ToLower(email) }
func regNoKey(regNo string) string { return userRegNoKeyPrefix + regNo }

// userDoc is the stored form of a user. models.User keeps the password
// hash out of API responses, so the document carries it in an explicit
// field.
type userDoc struct {
	models.User
	PasswordHash string `json:"passwordHash"`
}

// getUser loads a user document, including the password hash.
func getUser(txn *badger.Txn, id string) (*models.User, error) {
	var doc userDoc
	if err := getJSON(txn, userKey(id), &doc); err != nil {
		return nil, err
	}
	user := doc.User
	user.PasswordHash = doc.PasswordHash
	return &user, nil
}

// putUser writes a user document. Every user write must go through here
// so the password hash survives the round trip.
func putUser(txn *badger.Txn, user *models.User) error {
	return setJSON(txn, userKey(user.ID), &userDoc{User: *user, PasswordHash: user.PasswordHash})
}

// CreateUser stores a new user and its unique email and registration
// number indexes. The store assigns the ID and creation timestamp.
// Returns ErrConflict when email or registration number is taken.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	if user.Projects == nil {
		user.Projects = []string{}
	}

	return s.update(func(txn *badger.Txn) error {
		if taken, err := keyExists(txn, emailKey(user.Email)); err != nil {
			return err
		} else if taken {
			return ErrConflict
		}

		if user.RegistrationNumber != "" {
			if taken, err := keyExists(txn, regNoKey(user.RegistrationNumber)); err != nil {
				return err
			} else if taken {
				return ErrConflict
			}
			if err := txn.Set([]byte(regNoKey(user.RegistrationNumber)), []byte(user.ID)); err != nil {
				return err
			}
		}

		if err := txn.Set([]byte(emailKey(user.Email)), []byte(user.ID)); err != nil {
			return err
		}
		return putUser(txn, user)
	})
}

// GetUser loads a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	err := s.view(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail resolves an email through the index and loads the user.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user *models.User
	err := s.view(func(txn *badger.Txn) error {
		var id string
		item, err := txn.Get([]byte(emailKey(email)))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}
		user, err = getUser(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the user's name, email, avatar and registration
// number. Changed index entries (email, registration number) are
// replaced in the same transaction; a value taken by another user
// returns ErrConflict.
func (s *Store) UpdateProfile(ctx context.Context, userID, name, email, avatar, regNo string) (*models.User, error) {
	var user *models.User
	err := s.update(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, userID)
		if err != nil {
			return err
		}

		if !strings.EqualFold(user.Email, email) {
			if taken, err := keyExists(txn, emailKey(email)); err != nil {
				return err
			} else if taken {
				return ErrConflict
			}
			if err := txn.Delete([]byte(emailKey(user.Email))); err != nil {
				return err
			}
			if err := txn.Set([]byte(emailKey(email)), []byte(userID)); err != nil {
				return err
			}
		}

		if regNo != user.RegistrationNumber {
			if regNo != "" {
				if taken, err := keyExists(txn, regNoKey(regNo)); err != nil {
					return err
				} else if taken {
					return ErrConflict
				}
				if err := txn.Set([]byte(regNoKey(regNo)), []byte(userID)); err != nil {
					return err
				}
			}
			if user.RegistrationNumber != "" {
				if err := txn.Delete([]byte(regNoKey(user.RegistrationNumber))); err != nil {
					return err
				}
			}
		}

		user.Name = name
		user.Email = email
		user.Avatar = avatar
		user.RegistrationNumber = regNo
		return putUser(txn, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePasswordHash replaces the user's password hash.
func (s *Store) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	return s.update(func(txn *badger.Txn) error {
		user, err := getUser(txn, userID)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		return putUser(txn, user)
	})
}
