// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Polling Bee API server.

Polling Bee is a small polling service: anyone can create a poll with a
fixed question and a bounded option set, each user submits at most one
vote set per poll (up to the poll's selection limit), and live per-option
tallies are readable by anyone.

# Starting the Server

The server reads configuration from environment variables, a local .env
file, or CLI flags:

	DATABASE_URL=file:polls.db go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: the submission consistency core (transactions, tallies,
    duplicate detection) - independent of the web layer
  - handlers: HTTP request handlers (polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
