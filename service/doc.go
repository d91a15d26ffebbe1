// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service holds the business rules behind the HTTP handlers.

# Fortune Assignment

FortuneService gives each visitor at most one fortune per civil day:

	svc := service.NewFortuneService(store, pool, matcher, loc)
	res, err := svc.RequestFortune(ctx, sig, time.Now())

The first request of the day draws from the pool and inserts a visit. Later
requests return the stored fortune with IsRevisit set. Concurrent first
requests are serialised by the store's UNIQUE (device_id, visit_date) key:
the loser gets db.ErrDuplicate, re-reads the winner's record and returns it
as a revisit.

# Admin Listing

	admin := service.NewAdminService(store, cfg.AdminSecret)
	visits, err := admin.ListVisits(ctx, r.URL.Query().Get("secret"))

The secret is checked before the store is touched.

# Errors

  - ErrValidation: missing or oversized device id (400)
  - ErrDeviceIDTooLong: the oversized case, also matches ErrValidation
  - ErrAccessDenied: wrong admin secret (403)
  - *StorageError: store failure, for logs only (500)
*/
package service
