// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open(TypeSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	return conn
}

func TestOpenRejectsUnknownType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Errorf("Second CreateSchema failed: %v", err)
	}
}

func TestSubmissionUniqueConstraint(t *testing.T) {
	conn := openTestDB(t)
	defer conn.Close()

	now := time.Now().UTC()
	mustExec(t, conn, `INSERT INTO poll (id, question, max_response_options, created_at) VALUES ('p1', 'Q', 1, $1)`, now)
	mustExec(t, conn, `INSERT INTO submission (id, poll_id, user_id, created_at) VALUES ('s1', 'p1', 'u1', $1)`, now)

	_, err := conn.Exec(`INSERT INTO submission (id, poll_id, user_id, created_at) VALUES ('s2', 'p1', 'u1', $1)`, now)
	if err == nil {
		t.Fatal("Expected unique constraint violation for duplicate (poll_id, user_id)")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation did not recognize: %v", err)
	}

	// Same user on a different poll is fine
	mustExec(t, conn, `INSERT INTO poll (id, question, max_response_options, created_at) VALUES ('p2', 'Q2', 1, $1)`, now)
	mustExec(t, conn, `INSERT INTO submission (id, poll_id, user_id, created_at) VALUES ('s3', 'p2', 'u1', $1)`, now)
}

func TestSelectionPrimaryKey(t *testing.T) {
	conn := openTestDB(t)
	defer conn.Close()

	now := time.Now().UTC()
	mustExec(t, conn, `INSERT INTO poll (id, question, max_response_options, created_at) VALUES ('p1', 'Q', 2, $1)`, now)
	mustExec(t, conn, `INSERT INTO option (id, poll_id, name, created_at) VALUES ('o1', 'p1', 'A', $1)`, now)
	mustExec(t, conn, `INSERT INTO submission (id, poll_id, user_id, created_at) VALUES ('s1', 'p1', 'u1', $1)`, now)
	mustExec(t, conn, `INSERT INTO selection (submission_id, option_id) VALUES ('s1', 'o1')`)

	_, err := conn.Exec(`INSERT INTO selection (submission_id, option_id) VALUES ('s1', 'o1')`)
	if err == nil {
		t.Fatal("Expected primary key violation for duplicate selection")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation did not recognize: %v", err)
	}
}

func TestCascadeDelete(t *testing.T) {
	conn := openTestDB(t)
	defer conn.Close()

	now := time.Now().UTC()
	mustExec(t, conn, `INSERT INTO poll (id, question, max_response_options, created_at) VALUES ('p1', 'Q', 1, $1)`, now)
	mustExec(t, conn, `INSERT INTO option (id, poll_id, name, created_at) VALUES ('o1', 'p1', 'A', $1)`, now)
	mustExec(t, conn, `INSERT INTO submission (id, poll_id, user_id, created_at) VALUES ('s1', 'p1', 'u1', $1)`, now)
	mustExec(t, conn, `INSERT INTO selection (submission_id, option_id) VALUES ('s1', 'o1')`)

	mustExec(t, conn, `DELETE FROM poll WHERE id = 'p1'`)

	for _, table := range []string{"option", "submission", "selection"} {
		var count int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("Expected cascade to empty %s, found %d rows", table, count)
		}
	}
}

func TestIsUniqueViolationIgnoresOtherErrors(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Error("nil is not a violation")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Error("unrelated errors are not violations")
	}
}

func mustExec(t *testing.T, conn *sql.DB, query string, args ...interface{}) {
	t.Helper()
	if _, err := conn.Exec(query, args...); err != nil {
		t.Fatalf("Exec failed: %v\nquery: %s", err, query)
	}
}
