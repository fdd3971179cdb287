// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
)

// Sentinel errors returned by store operations. Handlers match these with
// errors.Is to pick a status code; anything else is a store failure and is
// returned wrapped.
var (
	ErrPollNotFound        = errors.New("poll not found")
	ErrInvalidPoll         = errors.New("invalid poll")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrDuplicateSubmission = errors.New("user has already submitted for this poll")
)

// Store implements poll creation, vote submission, and all poll queries on
// top of a relational database. It holds no state of its own and relies on
// the database's transactional guarantees for correctness, so any number
// of Store instances (or processes) may share one database.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
