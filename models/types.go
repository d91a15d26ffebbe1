package models

import "time"

// Placeholder device labels
const (
	LabelUnknownScreen = "Unknown screen"
	LabelUnknownDevice = "Unknown device"
	LabelIPhone        = "iPhone"
	LabelIPad          = "iPad"
	LabelAndroid       = "Android"
	LabelWindows       = "Windows PC"
	LabelMac           = "Mac"
)

// Request types

// Reported by the browser as window.screen.width/height and devicePixelRatio
type ScreenData struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PixelRatio float64 `json:"pixelRatio"`
}

type GetFortuneRequest struct {
	DeviceID   string      `json:"deviceId"`
	ScreenData *ScreenData `json:"screenData,omitempty"`
}

// Response types

type GetFortuneResponse struct {
	Allowed   bool   `json:"allowed"`
	Message   string `json:"message"`
	IsRevisit bool   `json:"isRevisit"`
}

type AdminStatsResponse struct {
	Count  int           `json:"count"`
	Visits []VisitRecord `json:"visits"`
}

// Domain types

// VisitRecord is one (visitor, civil day) fortune assignment
type VisitRecord struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"deviceId"`
	Date       string    `json:"date"`
	Fortune    string    `json:"fortune"`
	DeviceInfo string    `json:"deviceInfo,omitempty"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
