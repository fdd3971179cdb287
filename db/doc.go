// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects a driver by database type and verifies the connection:

	conn, err := db.Open("sqlite", "file:polls.db")
	conn, err := db.Open("postgres", "postgres://...")

For SQLite, Open appends the foreign_keys and busy_timeout pragmas to the
DSN so every pooled connection gets them.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - poll: Question, selection limit, creator
  - option: Selectable answers per poll
  - submission: One vote event per user per poll
  - selection: Options included in a submission

# Relationships

	poll 1──* option
	poll 1──* submission
	submission 1──* selection
	selection *──1 option

All foreign keys use ON DELETE CASCADE, so deleting a poll removes its
options, submissions, and selections.

# Constraints

  - submission (poll_id, user_id) is UNIQUE. This is the store-enforced
    guarantee that a user votes at most once per poll; concurrent inserts
    for the same pair fail here, not in application code.
  - selection (submission_id, option_id) is the primary key, so a
    submission cannot include the same option twice.
  - poll.max_response_options must be positive.

IsUniqueViolation recognizes constraint failures from both drivers so
callers can map them to domain errors.
*/
package db
