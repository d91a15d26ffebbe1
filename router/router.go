// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/daily-fortune/cliparse"
	"github.com/danielhkuo/daily-fortune/fortune"
	"github.com/danielhkuo/daily-fortune/handlers"
	"github.com/danielhkuo/daily-fortune/metrics"
	"github.com/danielhkuo/daily-fortune/middleware"
)

// RootMessage is the liveness text served on GET /
const RootMessage = "Daily Fortune server is running"

func NewRouter(db *sql.DB, cfg cliparse.Config, pool *fortune.Pool) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	fortuneHandler := handlers.NewFortuneHandler(db, cfg, pool)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Visitor
	mux.HandleFunc("POST /api/get-fortune", middleware.WithLogging(fortuneHandler.GetFortune))

	// Admin (shared secret in ?secret=)
	mux.HandleFunc("GET /api/admin-stats", middleware.WithLogging(adminHandler.Stats))

	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoint, exact match only
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(RootMessage))
	})

	return mux
}
