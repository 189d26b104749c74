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

	"github.com/yoshi128/feature-voting/cliparse"
	"github.com/yoshi128/feature-voting/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The database lives in a per-test temp dir and is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feature_voting_test.db")
	conn, err := db.Open(db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "feature_voting_test.db",
		DatabaseType: string(db.DialectSQLite),
		CORSOrigins:  []string{"*"},
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// StringPtr returns a pointer to s, for optional description fields.
func StringPtr(s string) *string {
	return &s
}

// CreateTestFeature inserts a feature directly and returns its ID
func CreateTestFeature(t *testing.T, conn *sql.DB, title string, description *string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO features (title, description)
		VALUES (?, ?)
		RETURNING id
	`, title, description).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test feature: %v", err)
	}

	return id
}

// AddTestVotes inserts n votes for a feature
func AddTestVotes(t *testing.T, conn *sql.DB, featureID int64, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		_, err := conn.Exec(`INSERT INTO votes (feature_id) VALUES (?)`, featureID)
		if err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}
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
