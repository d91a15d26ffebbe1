// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/daily-fortune/cliparse"
	"github.com/danielhkuo/daily-fortune/db"
	"github.com/danielhkuo/daily-fortune/middleware"
	"github.com/danielhkuo/daily-fortune/models"
	"github.com/danielhkuo/daily-fortune/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(conn *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{svc: service.NewAdminService(db.NewVisitStore(conn), cfg.AdminSecret)}
}

// Stats handles GET /api/admin-stats?secret=...
// Returns every stored visit, newest first
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	visits, err := h.svc.ListVisits(r.Context(), r.URL.Query().Get("secret"))
	if errors.Is(err, service.ErrAccessDenied) {
		slog.Warn("admin access denied", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusForbidden, "Access denied")
		return
	}
	if err != nil {
		slog.Error("failed to list visits", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminStatsResponse{
		Count:  len(visits),
		Visits: visits,
	})
}
