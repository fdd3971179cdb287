// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names accepted by Open.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database identified by databaseType ("sqlite" or
// "postgres") and verifies the connection with a ping.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	var driver, dsn string

	switch databaseType {
	case TypeSQLite:
		driver = "sqlite"
		dsn = sqliteDSN(databaseURL)
	case TypePostgres:
		driver = "postgres"
		dsn = databaseURL
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// sqliteDSN appends the pragmas every pooled connection needs. The sql
// package opens connections lazily, so pragmas must travel in the DSN
// rather than be set with Exec on one connection.
func sqliteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	if !strings.Contains(url, "_pragma=foreign_keys") {
		url += sep + "_pragma=foreign_keys(1)"
		sep = "&"
	}
	if !strings.Contains(url, "_pragma=busy_timeout") {
		url += sep + "_pragma=busy_timeout(5000)"
	}
	return url
}

// IsUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported driver. The submission path relies on this to turn
// the (poll_id, user_id) index trip into a duplicate-submission result.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}

	// modernc.org/sqlite reports constraint failures by message only
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
