// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package civil computes calendar dates in a fixed timezone, independent of
// the host's local zone. Every component that needs "today" goes through
// Date so the whole service agrees on where a day starts.
package civil

import "time"

// Layout is the stored date format (DD.MM.YYYY)
const Layout = "02.01.2006"

// Date returns the calendar date of now in loc. A nil loc means UTC.
func Date(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(Layout)
}
