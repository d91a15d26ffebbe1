// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Daily Fortune API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, pool)

# Endpoints

	GET  /                    - Liveness text
	GET  /health              - "OK"
	POST /api/get-fortune     - Today's fortune for a device
	GET  /api/admin-stats     - All visits (requires ?secret=)
	GET  /metrics             - Prometheus metrics

# Handler Initialization

	fortuneHandler := handlers.NewFortuneHandler(db, cfg, pool)
	adminHandler := handlers.NewAdminHandler(db, cfg)

The identity matcher is chosen from cfg.IdentityPolicy.
*/
package router
