// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/logger"
)

// TestDBURLEnv points the suite at a postgres database instead of in-memory sqlite
const TestDBURLEnv = "TEST_DATABASE_URL"

// TestSigningSecret is the token secret used by GetTestConfig
const TestSigningSecret = "test-signing-secret"

// SetupTestDB returns a migrated, empty database.
// Defaults to a private in-memory sqlite database. When TEST_DATABASE_URL is
// set, the postgres database it names is reset and migrated instead.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	driverType, url := db.DriverSQLite, ":memory:"
	if pgURL := os.Getenv(TestDBURLEnv); pgURL != "" {
		driverType, url = db.DriverPostgres, pgURL
	}

	conn, err := db.Open(ctx, driverType, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if driverType == db.DriverPostgres {
		_, err = conn.Exec(`
			DROP TABLE IF EXISTS votes CASCADE;
			DROP TABLE IF EXISTS polls CASCADE;
			DROP TABLE IF EXISTS users CASCADE;
			DROP TABLE IF EXISTS schema_migrations;
		`)
		if err != nil {
			t.Fatalf("Failed to clean database: %v", err)
		}
	}

	if err := db.Migrate(ctx, conn, driverType); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3001,
		DatabaseURL:    ":memory:",
		DatabaseType:   db.DriverSQLite,
		SigningSecret:  TestSigningSecret,
		TokenTTL:       cliparse.DefaultTokenTTL,
		BcryptCost:     bcrypt.MinCost,
		Env:            logger.EnvDev,
		AllowedOrigins: []string{"*"},
	}
}

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateTestUser inserts a user row directly and returns its id.
// The stored hash is not a valid bcrypt hash.
func CreateTestUser(t *testing.T, conn *sql.DB, username string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id
	`, username, []byte("not-a-real-hash")).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestPoll inserts a poll directly and returns its id
func CreateTestPoll(t *testing.T, conn *sql.DB, question, optionA, optionB string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO polls (question, option_a, option_b) VALUES ($1, $2, $3) RETURNING id
	`, question, optionA, optionB).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return id
}

// CountVoteRows counts stored vote rows for a (poll, user) pair
func CountVoteRows(t *testing.T, conn *sql.DB, pollID, userID int64) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM votes WHERE poll_id = $1 AND user_id = $2
	`, pollID, userID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}

	return n
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

// BearerHeader builds the Authorization header map for a token
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
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
