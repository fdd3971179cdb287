// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/polling-bee/db"
)

// Submit records one vote set for userID on pollID. Duplicate option IDs
// collapse; the deduplicated set must be non-empty, no larger than the
// poll's max_response_options, and contain only options of that poll.
//
// The submission row and its selection rows commit in a single
// transaction. The UNIQUE (poll_id, user_id) index is what actually
// decides concurrent duplicates: when two submissions race, the second
// insert fails and rolls back cleanly, so a failed Submit never leaves
// partial state and a retry of a committed Submit reports
// ErrDuplicateSubmission.
func (s *Store) Submit(pollID, userID string, optionIDs []string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidSelection)
	}

	ids := dedupe(optionIDs)
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one option is required", ErrInvalidSelection)
	}

	var maxOptions int
	err := s.db.QueryRow(`
		SELECT max_response_options FROM poll WHERE id = $1
	`, pollID).Scan(&maxOptions)
	if err == sql.ErrNoRows {
		return ErrPollNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query poll: %w", err)
	}

	if len(ids) > maxOptions {
		return fmt.Errorf("%w: at most %d options may be selected", ErrInvalidSelection, maxOptions)
	}

	valid, err := s.queryOptionIDs(pollID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if !valid[id] {
			return fmt.Errorf("%w: option %s does not belong to poll %s", ErrInvalidSelection, id, pollID)
		}
	}

	// Fast-path rejection only. Two concurrent submitters can both pass
	// this check; the unique index below is what keeps them honest.
	var exists bool
	err = s.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM submission WHERE poll_id = $1 AND user_id = $2
		)
	`, pollID, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for existing submission: %w", err)
	}
	if exists {
		return ErrDuplicateSubmission
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	submissionID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO submission (id, poll_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, submissionID, pollID, userID, time.Now().UTC())
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateSubmission
		}
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	for _, optionID := range ids {
		_, err = tx.Exec(`
			INSERT INTO selection (submission_id, option_id)
			VALUES ($1, $2)
		`, submissionID, optionID)
		if err != nil {
			return fmt.Errorf("failed to insert selection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateSubmission
		}
		return fmt.Errorf("failed to commit submission: %w", err)
	}

	return nil
}

func (s *Store) queryOptionIDs(pollID string) (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT id FROM option WHERE poll_id = $1`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	valid := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		valid[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return valid, nil
}

// dedupe collapses duplicate IDs while preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
