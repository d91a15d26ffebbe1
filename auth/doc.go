// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin secret check and log-safe identifiers.

# Admin Secret

The admin list is guarded by one shared secret passed as a query parameter:

	err := auth.ValidateAdminSecret(r.URL.Query().Get("secret"), cfg.AdminSecret)

The comparison is constant-time. An unset configured secret rejects every
request instead of matching an empty parameter. This is a low-grade gate,
not authentication: the secret travels in the URL.

# Redacting Device IDs

Device ids are opaque client identifiers and only their prefix is logged:

	slog.Info("new visit", "device", auth.RedactDeviceID(id))

Returns the first 5 characters followed by "...".
*/
package auth
