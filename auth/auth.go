// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidSecret = errors.New("invalid admin secret")

// ValidateAdminSecret compares the supplied secret with the configured one
// in constant time. An empty configured secret never matches.
func ValidateAdminSecret(supplied, configured string) error {
	if configured == "" {
		return ErrInvalidSecret
	}
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) != 1 {
		return ErrInvalidSecret
	}
	return nil
}

// RedactDeviceID shortens a device id for logs: first 5 characters and "..."
func RedactDeviceID(deviceID string) string {
	const keep = 5
	r := []rune(deviceID)
	if len(r) <= keep {
		return deviceID
	}
	return string(r[:keep]) + "..."
}
