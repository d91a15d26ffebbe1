// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/daily-fortune/cliparse"
	"github.com/danielhkuo/daily-fortune/db"
	"github.com/danielhkuo/daily-fortune/fortune"
	"github.com/danielhkuo/daily-fortune/identity"
	"github.com/danielhkuo/daily-fortune/middleware"
	"github.com/danielhkuo/daily-fortune/models"
	"github.com/danielhkuo/daily-fortune/service"
)

type FortuneHandler struct {
	svc *service.FortuneService
	cfg cliparse.Config
	now func() time.Time
}

func NewFortuneHandler(conn *sql.DB, cfg cliparse.Config, pool *fortune.Pool) *FortuneHandler {
	matcher, err := identity.NewMatcher(cfg.IdentityPolicy)
	if err != nil {
		slog.Warn("unknown identity policy, using device matcher", "policy", cfg.IdentityPolicy, "error", err)
		matcher = identity.DeviceMatcher{}
	}

	svc := service.NewFortuneService(db.NewVisitStore(conn), pool, matcher, cfg.Location)
	return &FortuneHandler{svc: svc, cfg: cfg, now: time.Now}
}

// GetFortune handles POST /api/get-fortune
// Returns today's fortune for the device, drawing one on the first visit
func (h *FortuneHandler) GetFortune(w http.ResponseWriter, r *http.Request) {
	var req models.GetFortuneRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sig := identity.NewSignal(
		req.DeviceID,
		r.UserAgent(),
		middleware.GetClientIP(r, h.cfg.TrustProxy),
		req.ScreenData,
	)

	res, err := h.svc.RequestFortune(r.Context(), sig, h.now())
	if errors.Is(err, service.ErrDeviceIDTooLong) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Device ID too long")
		return
	}
	if errors.Is(err, service.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing device ID")
		return
	}
	if err != nil {
		slog.Error("failed to assign fortune", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetFortuneResponse{
		Allowed:   true,
		Message:   res.Message,
		IsRevisit: res.IsRevisit,
	})
}
