// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns an immutable Config value that is threaded into every
component at construction:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p              Server port (default: 5000)
	-d              Database URL (required)
	-t              Database type: sqlite or postgres (default: sqlite)
	-admin-secret   Admin shared secret (required)
	-trust-proxy    Trust X-Forwarded-For / X-Real-IP (default: false)
	-tz             Civil timezone (default: Europe/Sofia)
	-reap           Reap policy: none, ttl, midnight (default: none)
	-retention      Record age limit for the ttl policy (default: 24h)
	-identity       Identity policy: device, device-or-network (default: device)
	-fortunes       Fortune list file (default: embedded list)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ADMIN_SECRET    → -admin-secret
	TRUST_PROXY     → -trust-proxy
	TIMEZONE        → -tz
	REAP_POLICY     → -reap
	RETENTION       → -retention
	IDENTITY_POLICY → -identity
	FORTUNES_FILE   → -fortunes

CLI flags take precedence over environment variables. main loads a .env file
(if present) before parsing, so the file behaves like the environment.

# Validation

ParseFlags returns an error if DATABASE_URL or ADMIN_SECRET is missing, or if
a policy, timezone, duration or boolean value cannot be understood. The
timezone database is embedded, so Location resolves on hosts without tzdata.
*/
package cliparse
