// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is a client error with no side effects
	ErrValidation = errors.New("validation failed")
	// ErrDeviceIDTooLong is the ErrValidation case for an oversized device id
	ErrDeviceIDTooLong = fmt.Errorf("%w: device id too long", ErrValidation)
	// ErrAccessDenied is returned for a wrong admin secret, with no data access
	ErrAccessDenied = errors.New("access denied")
)

// StorageError wraps a store failure. Its message is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
