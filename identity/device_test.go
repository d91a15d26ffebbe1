// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"math"
	"testing"

	"github.com/danielhkuo/daily-fortune/models"
)

const (
	uaIPhone   = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1"
	uaIPad     = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	uaAndroid  = "Mozilla/5.0 (Linux; Android 13; SM-S908B Build/TP1A.220624.014; wv) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0 Mobile Safari/537.36"
	uaReduced  = "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	uaWindows  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	uaMac      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"
	uaLinuxBot = "curl/8.4.0"
)

func screen(w, h, ratio float64) *models.ScreenData {
	return &models.ScreenData{Width: w, Height: h, PixelRatio: ratio}
}

func TestDeviceLabel(t *testing.T) {
	testCases := []struct {
		name     string
		ua       string
		screen   *models.ScreenData
		expected string
	}{
		{"iPhone Pro Max portrait", uaIPhone, screen(430, 932, 3), "iPhone 14 Pro Max / 15 Plus / 15 Pro Max / 16 Plus"},
		{"iPhone Pro Max landscape", uaIPhone, screen(932, 430, 3), "iPhone 14 Pro Max / 15 Plus / 15 Pro Max / 16 Plus"},
		{"iPhone XR by ratio", uaIPhone, screen(414, 896, 2), "iPhone XR / 11"},
		{"iPhone XS Max by ratio", uaIPhone, screen(414, 896, 3), "iPhone XS Max / 11 Pro Max"},
		{"iPhone same size unknown ratio", uaIPhone, screen(414, 896, 0), "iPhone XR / XS Max / 11"},
		{"iPhone X needs ratio 3", uaIPhone, screen(375, 812, 2), models.LabelIPhone},
		{"iPhone fractional size", uaIPhone, screen(389.6, 844.2, 3), "iPhone 12 / 12 Pro / 13 / 13 Pro / 14"},
		{"iPhone unknown size", uaIPhone, screen(500, 1000, 3), models.LabelIPhone},
		{"iPad", uaIPad, screen(820, 1180, 2), models.LabelIPad},
		{"Android with Build", uaAndroid, screen(384, 854, 2.8), "SM-S908B"},
		{"Android reduced UA", uaReduced, screen(412, 915, 2.6), models.LabelAndroid},
		{"Android empty model", "Mozilla/5.0 (Linux; Android 9; Build/PPR1)", screen(360, 640, 2), models.LabelAndroid},
		{"Windows", uaWindows, screen(1920, 1080, 1), models.LabelWindows},
		{"Mac", uaMac, screen(1512, 982, 2), models.LabelMac},
		{"unknown agent", uaLinuxBot, screen(800, 600, 1), models.LabelUnknownDevice},
		{"empty agent", "", screen(800, 600, 1), models.LabelUnknownDevice},
		{"no screen", uaIPhone, nil, models.LabelUnknownScreen},
		{"zero screen", uaAndroid, screen(0, 0, 0), models.LabelUnknownScreen},
		{"negative screen", uaWindows, screen(-1, 900, 1), models.LabelUnknownScreen},
		{"NaN screen", uaIPhone, screen(math.NaN(), 932, 3), models.LabelUnknownScreen},
		{"infinite screen", uaIPhone, screen(math.Inf(1), 932, 3), models.LabelUnknownScreen},
		{"garbage agent", "Android;;;)))Build(((", screen(1, 1, 1), models.LabelAndroid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeviceLabel(tc.ua, tc.screen)
			if got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestDeviceLabel_Deterministic(t *testing.T) {
	s := screen(393, 852, 3)
	first := DeviceLabel(uaIPhone, s)
	for i := 0; i < 10; i++ {
		if got := DeviceLabel(uaIPhone, s); got != first {
			t.Fatalf("Label changed between calls: %q vs %q", first, got)
		}
	}
}

func TestResolutionTableOrder(t *testing.T) {
	// A catch-all row (ratio 0) must never shadow a ratio-specific row of the
	// same size that comes after it.
	for i, r := range iPhoneResolutions {
		if r.PixelRatio != 0 {
			continue
		}
		for _, later := range iPhoneResolutions[i+1:] {
			if later.Width == r.Width && later.Height == r.Height {
				t.Errorf("row %q shadows later row %q", r.Name, later.Name)
			}
		}
	}
}

func TestIsPlaceholder(t *testing.T) {
	for _, label := range []string{"", models.LabelUnknownScreen, models.LabelUnknownDevice} {
		if !IsPlaceholder(label) {
			t.Errorf("%q should be a placeholder", label)
		}
	}
	for _, label := range []string{models.LabelIPhone, models.LabelAndroid, "SM-S908B"} {
		if IsPlaceholder(label) {
			t.Errorf("%q should not be a placeholder", label)
		}
	}
}
