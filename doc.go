// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Daily Fortune server.

Each visitor gets one fortune per civil day. Repeat requests on the same
day return the same message; the next day a new one is drawn.

# Starting the Server

The server reads a .env file if present, then CLI flags and environment
variables:

	DATABASE_URL=fortune.db ADMIN_SECRET=... go run .

Or with flags:

	go run . -p 5000 -t postgres -d "postgres://..." -admin-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file/DSN or PostgreSQL connection string
  - ADMIN_SECRET (-admin-secret): shared secret for /api/admin-stats

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TIMEZONE (-tz): civil timezone for the daily reset (default: Europe/Sofia)
  - IDENTITY_POLICY (-identity): device or device-or-network (default: device)
  - REAP_POLICY (-reap): none, ttl or midnight (default: none)
  - RETENTION (-retention): record age limit for ttl (default and minimum: 24h)
  - TRUST_PROXY (-trust-proxy): read X-Forwarded-For (default: false)
  - FORTUNES_FILE (-fortunes): fortune list, one per line (default: built in)

# Architecture

  - handlers: HTTP request handlers (fortune, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, client IP
  - service: fortune assignment and admin listing
  - identity: device labels and visitor matching
  - db: schema and visit store (SQLite, PostgreSQL)
  - fortune: the message pool
  - civil: civil date calculation
  - reaper: scheduled deletion of old visits
  - metrics: Prometheus counters
  - auth: admin secret check, log redaction
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
