// Copyright (c) 2025 Daniel Kuo.
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

	"github.com/danielhkuo/daily-fortune/cliparse"
	"github.com/danielhkuo/daily-fortune/db"
	"github.com/danielhkuo/daily-fortune/identity"
	"github.com/danielhkuo/daily-fortune/models"
)

// TestAdminSecret is the admin secret in GetTestConfig
const TestAdminSecret = "test-admin-secret"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Every call gets its own database, so tests can run in parallel.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           5000,
		DatabaseURL:    "file::memory:",
		DatabaseType:   "sqlite",
		AdminSecret:    TestAdminSecret,
		Timezone:       "UTC",
		Location:       time.UTC,
		ReapPolicy:     cliparse.ReapNone,
		Retention:      cliparse.DefaultRetention,
		IdentityPolicy: identity.PolicyDevice,
	}
}

// CreateTestVisit inserts rec, filling the id, fortune and timestamps when
// they are empty, and returns the stored record
func CreateTestVisit(t *testing.T, conn *sql.DB, rec models.VisitRecord) models.VisitRecord {
	t.Helper()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Fortune == "" {
		rec.Fortune = "Test fortune for " + rec.DeviceID
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}

	if err := db.NewVisitStore(conn).InsertVisit(t.Context(), rec); err != nil {
		t.Fatalf("Failed to create test visit: %v", err)
	}

	return rec
}

// CountVisits returns the number of stored visits
func CountVisits(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM visit").Scan(&n); err != nil {
		t.Fatalf("Failed to count visits: %v", err)
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
