// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/danielhkuo/daily-fortune/models"
	"github.com/danielhkuo/daily-fortune/testutil"
)

func getStats(h *AdminHandler, secret string) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("GET", "/api/admin-stats?secret="+url.QueryEscape(secret), nil, nil)
	w := httptest.NewRecorder()
	h.Stats(w, req)
	return w
}

func TestAdminStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	base := time.Date(2025, 12, 20, 8, 0, 0, 0, time.UTC)
	testutil.CreateTestVisit(t, db, models.VisitRecord{DeviceID: "first", Date: "20.12.2025", CreatedAt: base})
	testutil.CreateTestVisit(t, db, models.VisitRecord{DeviceID: "second", Date: "20.12.2025", CreatedAt: base.Add(time.Minute)})
	testutil.CreateTestVisit(t, db, models.VisitRecord{DeviceID: "third", Date: "20.12.2025", CreatedAt: base.Add(2 * time.Minute)})

	h := NewAdminHandler(db, testutil.GetTestConfig())
	w := getStats(h, testutil.TestAdminSecret)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AdminStatsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 3 || len(resp.Visits) != resp.Count {
		t.Fatalf("Expected count 3 matching visits, got count %d with %d visits", resp.Count, len(resp.Visits))
	}
	if resp.Visits[0].DeviceID != "third" || resp.Visits[2].DeviceID != "first" {
		t.Errorf("Expected newest first, got %s..%s", resp.Visits[0].DeviceID, resp.Visits[2].DeviceID)
	}
}

func TestAdminStats_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewAdminHandler(db, testutil.GetTestConfig())
	w := getStats(h, testutil.TestAdminSecret)
	testutil.AssertStatus(t, w, http.StatusOK)

	// visits must serialise as [] not null
	var raw map[string]any
	testutil.AssertJSON(t, w, &raw)
	visits, ok := raw["visits"].([]any)
	if !ok || len(visits) != 0 {
		t.Errorf("Expected empty visits array, got %v", raw["visits"])
	}
	if raw["count"] != float64(0) {
		t.Errorf("Expected count 0, got %v", raw["count"])
	}
}

func TestAdminStats_Denied(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	testutil.CreateTestVisit(t, db, models.VisitRecord{DeviceID: "abc", Date: "20.12.2025"})

	testCases := []struct {
		name       string
		configured string
		supplied   string
	}{
		{"wrong secret", testutil.TestAdminSecret, "guess"},
		{"missing secret", testutil.TestAdminSecret, ""},
		{"prefix of secret", testutil.TestAdminSecret, testutil.TestAdminSecret[:4]},
		{"no secret configured", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testutil.GetTestConfig()
			cfg.AdminSecret = tc.configured
			h := NewAdminHandler(db, cfg)

			w := getStats(h, tc.supplied)
			testutil.AssertStatus(t, w, http.StatusForbidden)

			var raw map[string]any
			testutil.AssertJSON(t, w, &raw)
			if _, leaked := raw["visits"]; leaked {
				t.Error("Denied response must not include visits")
			}
			if raw["error"] != "Access denied" {
				t.Errorf("Expected access denied error, got %v", raw["error"])
			}
		})
	}
}

func TestAdminStats_StorageFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())
	db.Close()

	w := getStats(h, testutil.TestAdminSecret)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

// TestFortuneThenAdmin runs the visitor and admin flows against one store
func TestFortuneThenAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()

	fh := NewFortuneHandler(db, cfg, testPool)
	for _, id := range []string{"a", "b", "a", "c", "b"} {
		w := postFortune(fh, models.GetFortuneRequest{DeviceID: id}, nil)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w := getStats(NewAdminHandler(db, cfg), testutil.TestAdminSecret)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AdminStatsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 3 {
		t.Errorf("Expected 3 distinct visitors, got %d", resp.Count)
	}
	for _, v := range resp.Visits {
		if !testPool.Contains(v.Fortune) {
			t.Errorf("Stored fortune %q is not from the pool", v.Fortune)
		}
	}
}
