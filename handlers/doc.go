// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Daily Fortune API.

# Handler Types

  - FortuneHandler: POST /api/get-fortune
  - AdminHandler: GET /api/admin-stats

Handlers are created via constructor functions that accept *sql.DB and Config:

	fortuneHandler := handlers.NewFortuneHandler(db, cfg, pool)
	adminHandler := handlers.NewAdminHandler(db, cfg)

Business rules live in the service package; handlers decode requests and
map errors to status codes.

# Status Codes

	400 {"error": ...}  invalid JSON, missing or oversized deviceId
	403 {"error": ...}  wrong admin secret
	500 {"error": ...}  storage failure (details are logged, not returned)
*/
package handlers
