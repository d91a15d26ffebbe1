// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names are camelCase because the browser client reads them
directly.

# Request Types

  - GetFortuneRequest: deviceId, screenData
  - ScreenData: width, height, pixelRatio

# Response Types

  - GetFortuneResponse: allowed, message, isRevisit
  - AdminStatsResponse: count, visits
  - ErrorResponse: error

# Domain Types

  - VisitRecord: one fortune assignment per device per civil day

# Constants

Device labels that carry no model information:

	LabelUnknownScreen = "Unknown screen"
	LabelUnknownDevice = "Unknown device"

plus the generic family labels (iPhone, iPad, Android, Windows PC, Mac).
*/
package models
