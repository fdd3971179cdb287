// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is shared between SQLite and PostgreSQL: timestamps are always
// written by the application, so no NOW() defaults appear here.
const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    max_response_options INTEGER NOT NULL CHECK (max_response_options > 0),
    created_by TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_poll_created_by ON poll(created_by);

-- Options
CREATE TABLE IF NOT EXISTS option (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_option_poll_id ON option(poll_id);

-- Submissions: the UNIQUE (poll_id, user_id) index is the correctness
-- mechanism for at-most-one-submission-per-user-per-poll. Application code
-- only pre-checks as a fast path; the index decides races.
CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (poll_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_submission_poll_id ON submission(poll_id);

-- Selections: join rows recording that a submission included an option.
-- Vote tallies are derived by counting these rows; there is no counter
-- column anywhere.
CREATE TABLE IF NOT EXISTS selection (
    submission_id TEXT NOT NULL REFERENCES submission(id) ON DELETE CASCADE,
    option_id TEXT NOT NULL REFERENCES option(id) ON DELETE CASCADE,
    PRIMARY KEY (submission_id, option_id)
);

CREATE INDEX IF NOT EXISTS idx_selection_option_id ON selection(option_id);
`
