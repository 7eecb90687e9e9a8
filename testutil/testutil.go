// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/beefmusic/api/auth"
	"github.com/beefmusic/api/cliparse"
	"github.com/beefmusic/api/db"
)

// SetupTestDB creates an in-memory sqlite database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		JWTSecret:    "test-secret",
		AdminUser:    "admin",
		AdminPass:    "admin-pass",
	}
}

// CreateTestUser inserts a user and returns its ID
func CreateTestUser(t *testing.T, dbConn *sql.DB, username string) string {
	t.Helper()

	id := uuid.NewString()
	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = dbConn.Exec(`
		INSERT INTO app_user (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, username, hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestSong inserts a published song with the given genre and returns its ID
func CreateTestSong(t *testing.T, dbConn *sql.DB, title, genre string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := dbConn.Exec(`
		INSERT INTO song (id, title, genre, author, status, created_at)
		VALUES ($1, $2, $3, 'BeefMusic', 'publicada', $4)
	`, id, title, genre, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test song: %v", err)
	}

	return id
}

// CastTestVote inserts a vote record directly, bypassing the toggle logic
func CastTestVote(t *testing.T, dbConn *sql.DB, songID, userID, kind string) {
	t.Helper()

	_, err := dbConn.Exec(`
		INSERT INTO song_vote (id, song_id, user_id, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), songID, userID, kind, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// UserToken mints a valid user token for the test config's secret
func UserToken(t *testing.T, cfg cliparse.Config, userID, username string) string {
	t.Helper()

	token, err := auth.NewUserToken(cfg.JWTSecret, userID, username)
	if err != nil {
		t.Fatalf("Failed to mint test token: %v", err)
	}
	return token
}

// AdminToken mints a valid admin token for the test config's secret
func AdminToken(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	token, err := auth.NewAdminToken(cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Failed to mint test admin token: %v", err)
	}
	return token
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
