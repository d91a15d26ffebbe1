// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity decides who a visitor is for daily deduplication.

# Device Labels

DeviceLabel is a best-effort guess at the device model, shown in the admin
list and optionally used for matching:

	label := identity.DeviceLabel(r.UserAgent(), req.ScreenData)

iPhones are recognised by screen size through an ordered resolution table
(both orientations, optional pixel ratio). Android models come from the
"Android <version>; <model> Build" part of the user agent. Desktops get a
generic Windows or Mac label. Anything else, including a missing screen,
falls back to a placeholder. The function never fails.

# Matchers

A Matcher turns a Signal into Criteria for the visit store:

	m, err := identity.NewMatcher(cfg.IdentityPolicy)
	crit := m.Criteria(identity.NewSignal(deviceID, ua, ip, screen))

  - device: same device id (default)
  - device-or-network: same device id, OR same IP address and same
    non-placeholder device label

The store's uniqueness constraint is always (device id, date); network
matching only widens lookups.
*/
package identity
