// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/voxobserver/server/cliparse"
	"github.com/voxobserver/server/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory database lives on a single connection; more than one
	// open connection would silently create separate empty databases.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		SessionSalt:  "test-session-salt",
		OpenAIModel:  "gpt-3.5-turbo",
	}
}

// CreatePolitician inserts a politician and returns its id
func CreatePolitician(t *testing.T, conn *sql.DB, name, handle string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO politicians (name, handle)
		VALUES ($1, $2)
	`, name, handle)
	if err != nil {
		t.Fatalf("Failed to create test politician: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read politician id: %v", err)
	}
	return id
}

// AddAffiliation inserts a time-boxed party affiliation. validTo may be nil
// to mark the current party.
func AddAffiliation(t *testing.T, conn *sql.DB, politicianID int64, party, validFrom string, validTo *string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO party_affiliations (politician_id, party, valid_from, valid_to)
		VALUES ($1, $2, $3, $4)
	`, politicianID, party, validFrom, validTo)
	if err != nil {
		t.Fatalf("Failed to create test affiliation: %v", err)
	}
}

// CreateSession inserts a voting session and returns its id. date may be
// nil (sessions with no date are excluded from attendance) or malformed
// (tolerated and skipped by readers).
func CreateSession(t *testing.T, conn *sql.DB, externalID string, date *string, title string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO voting_sessions (external_id, date, time, title, meeting_details)
		VALUES ($1, $2, '14:00', $3, 'Session of the Chamber of Deputies')
	`, externalID, date, title)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read session id: %v", err)
	}
	return id
}

// CastVote records a vote value for a politician in a session
func CastVote(t *testing.T, conn *sql.DB, politicianID, sessionID int64, vote string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (politician_id, voting_session_id, vote)
		VALUES ($1, $2, $3)
	`, politicianID, sessionID, vote)
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// SetSearchCount seeds a search_stats row directly
func SetSearchCount(t *testing.T, conn *sql.DB, politicianID int64, count int64, lastSearched string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO search_stats (politician_id, search_count, last_searched)
		VALUES ($1, $2, $3)
	`, politicianID, count, lastSearched)
	if err != nil {
		t.Fatalf("Failed to seed search stats: %v", err)
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

// StrPtr returns a pointer to its argument; convenience for nullable columns
func StrPtr(s string) *string {
	return &s
}
