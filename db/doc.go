// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the visit store.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"postgres" uses github.com/lib/pq; "sqlite" uses modernc.org/sqlite with a
single open connection and a busy timeout.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - visit: one row per device per civil day, UNIQUE (device_id, visit_date)

# Visit Store

	store := db.NewVisitStore(conn)
	rec, err := store.FindVisit(ctx, today, criteria)   // ErrNotFound
	err = store.InsertVisit(ctx, rec)                   // ErrDuplicate
	visits, err := store.ListVisits(ctx)                // newest first
	n, err := store.DeleteExpired(ctx, cutoff, today)   // ttl reap
	n, err = store.DeleteOtherDates(ctx, today)         // midnight reap

ErrDuplicate is returned when the unique constraint rejects an insert, from
either driver (postgres code 23505, SQLite constraint errors). Callers use it
to detect a lost race and re-read the winning row.

# Indexes

  - visit.(device_id, visit_date) (unique)
  - visit.created_at
  - visit.(visit_date, ip_address, device_info)
*/
package db
