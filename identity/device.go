// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"math"
	"regexp"
	"strings"

	"github.com/danielhkuo/daily-fortune/models"
)

// resolution maps a logical screen size to a marketing name.
// PixelRatio 0 matches any ratio.
type resolution struct {
	Width, Height int
	PixelRatio    float64
	Name          string
}

// Ordered: the first matching row wins, so ratio-specific rows come before
// the catch-all row for the same size.
var iPhoneResolutions = []resolution{
	{440, 956, 0, "iPhone 16 Pro Max"},
	{402, 874, 0, "iPhone 16 Pro"},
	{430, 932, 0, "iPhone 14 Pro Max / 15 Plus / 15 Pro Max / 16 Plus"},
	{393, 852, 0, "iPhone 14 Pro / 15 / 15 Pro / 16"},
	{428, 926, 0, "iPhone 12 Pro Max / 13 Pro Max / 14 Plus"},
	{390, 844, 0, "iPhone 12 / 12 Pro / 13 / 13 Pro / 14"},
	{375, 812, 3, "iPhone X / XS / 11 Pro / 12 mini / 13 mini"},
	{414, 896, 2, "iPhone XR / 11"},
	{414, 896, 3, "iPhone XS Max / 11 Pro Max"},
	{414, 896, 0, "iPhone XR / XS Max / 11"},
	{414, 736, 0, "iPhone 6 Plus / 7 Plus / 8 Plus"},
	{375, 667, 0, "iPhone 6 / 7 / 8 / SE (2nd-3rd gen)"},
	{320, 568, 0, "iPhone 5 / SE (1st gen)"},
}

// Matches "Android 13; SM-S908B Build/..." and captures the model
var androidModel = regexp.MustCompile(`Android\s+[^;)]*;\s*([^;)]*?)\s*Build`)

// DeviceLabel guesses a human-readable device model from the user agent
// and reported screen. It is total: missing or malformed input degrades to
// a placeholder label.
func DeviceLabel(userAgent string, screen *models.ScreenData) string {
	if !validScreen(screen) {
		return models.LabelUnknownScreen
	}

	switch {
	case strings.Contains(userAgent, "iPhone"):
		return matchIPhone(screen)
	case strings.Contains(userAgent, "iPad"):
		return models.LabelIPad
	case strings.Contains(userAgent, "Android"):
		if m := androidModel.FindStringSubmatch(userAgent); m != nil {
			if model := strings.TrimSpace(m[1]); model != "" {
				return model
			}
		}
		return models.LabelAndroid
	case strings.Contains(userAgent, "Windows"):
		return models.LabelWindows
	case strings.Contains(userAgent, "Macintosh"), strings.Contains(userAgent, "Mac OS"):
		return models.LabelMac
	}
	return models.LabelUnknownDevice
}

// IsPlaceholder reports whether label carries no model-specific information
func IsPlaceholder(label string) bool {
	switch label {
	case "", models.LabelUnknownScreen, models.LabelUnknownDevice:
		return true
	}
	return false
}

func validScreen(s *models.ScreenData) bool {
	if s == nil {
		return false
	}
	for _, v := range []float64{s.Width, s.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}

func matchIPhone(s *models.ScreenData) string {
	w := int(math.Round(s.Width))
	h := int(math.Round(s.Height))
	for _, r := range iPhoneResolutions {
		sizeMatch := (w == r.Width && h == r.Height) || (w == r.Height && h == r.Width)
		if !sizeMatch {
			continue
		}
		if r.PixelRatio != 0 && math.Abs(s.PixelRatio-r.PixelRatio) > 0.01 {
			continue
		}
		return r.Name
	}
	return models.LabelIPhone
}
