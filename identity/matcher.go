// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/daily-fortune/models"
)

// Identity policies accepted by NewMatcher
const (
	PolicyDevice          = "device"
	PolicyDeviceOrNetwork = "device-or-network"
)

// Signal is everything a request tells us about who is asking
type Signal struct {
	DeviceID   string
	UserAgent  string
	IPAddress  string
	Screen     *models.ScreenData
	DeviceInfo string
}

// NewSignal trims the device id and derives the device label
func NewSignal(deviceID, userAgent, ip string, screen *models.ScreenData) Signal {
	return Signal{
		DeviceID:   strings.TrimSpace(deviceID),
		UserAgent:  userAgent,
		IPAddress:  ip,
		Screen:     screen,
		DeviceInfo: DeviceLabel(userAgent, screen),
	}
}

// Criteria selects the visit records that belong to one visitor.
// A record matches when DeviceID is equal, or, if Network is set, when both
// IPAddress and DeviceInfo are equal.
type Criteria struct {
	DeviceID   string
	Network    bool
	IPAddress  string
	DeviceInfo string
}

// Matcher turns a request signal into lookup criteria
type Matcher interface {
	Name() string
	Criteria(sig Signal) Criteria
}

// DeviceMatcher identifies visitors by device id alone
type DeviceMatcher struct{}

func (DeviceMatcher) Name() string { return PolicyDevice }

func (DeviceMatcher) Criteria(sig Signal) Criteria {
	return Criteria{DeviceID: sig.DeviceID}
}

// NetworkMatcher also treats a record with the same address and the same
// specific device label as the same visitor. Distinct visitors behind one
// NAT with identical phones are merged; this is the documented cost.
// Network matching is skipped when the label is a placeholder or the
// address is unknown.
type NetworkMatcher struct{}

func (NetworkMatcher) Name() string { return PolicyDeviceOrNetwork }

func (NetworkMatcher) Criteria(sig Signal) Criteria {
	c := Criteria{DeviceID: sig.DeviceID}
	if sig.IPAddress != "" && !IsPlaceholder(sig.DeviceInfo) {
		c.Network = true
		c.IPAddress = sig.IPAddress
		c.DeviceInfo = sig.DeviceInfo
	}
	return c
}

// NewMatcher returns the matcher for a configured identity policy
func NewMatcher(policy string) (Matcher, error) {
	switch policy {
	case "", PolicyDevice:
		return DeviceMatcher{}, nil
	case PolicyDeviceOrNetwork:
		return NetworkMatcher{}, nil
	}
	return nil, fmt.Errorf("unknown identity policy %q", policy)
}
