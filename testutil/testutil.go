// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/polling-bee/db"
)

// SetupTestDB creates a fresh SQLite database under t.TempDir() with the
// full schema. Each test gets its own file, so tests are hermetic and can
// run in parallel; the file (not :memory:) also lets the connection pool
// hand out multiple connections, which the concurrency tests need.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestPoll inserts a poll directly and returns its ID.
func CreateTestPoll(t *testing.T, conn *sql.DB, question string, maxResponseOptions int, createdBy string) string {
	t.Helper()

	pollID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO poll (id, question, max_response_options, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pollID, question, maxResponseOptions, createdBy, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// AddTestOption adds an option to a poll and returns the option ID.
func AddTestOption(t *testing.T, conn *sql.DB, pollID, name string) string {
	t.Helper()

	optionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO option (id, poll_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`, optionID, pollID, name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// CreateTestSubmission inserts a submission with its selections directly,
// bypassing the store, and returns the submission ID.
func CreateTestSubmission(t *testing.T, conn *sql.DB, pollID, userID string, optionIDs ...string) string {
	t.Helper()

	submissionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO submission (id, poll_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, submissionID, pollID, userID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test submission: %v", err)
	}

	for _, optionID := range optionIDs {
		_, err := conn.Exec(`
			INSERT INTO selection (submission_id, option_id)
			VALUES ($1, $2)
		`, submissionID, optionID)
		if err != nil {
			t.Fatalf("Failed to create test selection: %v", err)
		}
	}

	return submissionID
}

// CountRows runs a COUNT query and returns the result.
func CountRows(t *testing.T, conn *sql.DB, query string, args ...interface{}) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
