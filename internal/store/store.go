// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

// Package store persists Taskgrid documents in BadgerDB. Every document
// is stored as JSON under a typed key prefix, and every mutation that
// touches more than one document runs inside a single transaction so the
// cross-references between users, projects, kanbans and cards can never
// be observed half-updated.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/taskgrid/taskgrid/internal/config"
	"github.com/taskgrid/taskgrid/internal/logging"
	"github.com/taskgrid/taskgrid/internal/metrics"
)

// Key prefixes for BadgerDB storage.
const (
	userKeyPrefix      = "user:"
	userEmailKeyPrefix = "user_email:"
	userRegNoKeyPrefix = "user_regno:"
	projectKeyPrefix   = "project:"
	codeKeyPrefix      = "project_code:"
	kanbanKeyPrefix    = "kanban:"
	cardKeyPrefix      = "card:"
)

// maxTxnRetries bounds the retry loop on optimistic transaction
// conflicts.
const maxTxnRetries = 5

// Store is the BadgerDB-backed document store.
type Store struct {
	db *badger.DB
}

// Open opens the database described by cfg.
func Open(cfg config.DatabaseConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Database opened")
	return &Store{db: db}, nil
}

// NewWithDB wraps an already-open database. Used by tests.
func NewWithDB(db *badger.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// update runs fn in a read-write transaction, retrying a bounded number
// of times when the optimistic commit detects a conflict.
func (s *Store) update(fn func(txn *badger.Txn) error) error {
	start := time.Now()
	defer func() { metrics.RecordTxnDuration("update", time.Since(start)) }()

	var err error
	for i := 0; i < maxTxnRetries; i++ {
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		metrics.RecordTxnConflict()
		time.Sleep(time.Duration(i+1) * 5 * time.Millisecond)
	}
	return fmt.Errorf("transaction conflict after %d retries: %w", maxTxnRetries, err)
}

// view runs fn in a read-only transaction.
func (s *Store) view(fn func(txn *badger.Txn) error) error {
	start := time.Now()
	defer func() { metrics.RecordTxnDuration("view", time.Since(start)) }()
	return s.db.View(fn)
}

// Ping verifies the database is open and serving reads.
func (s *Store) Ping(ctx context.Context) error {
	return s.view(func(txn *badger.Txn) error {
		return nil
	})
}

// getJSON loads the value at key into out. Returns ErrNotFound when the
// key is absent.
func getJSON(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

// setJSON marshals v and stores it at key.
func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// keyExists reports whether key is present.
func keyExists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	return true, nil
}
