// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"

	"github.com/danielhkuo/daily-fortune/auth"
	"github.com/danielhkuo/daily-fortune/metrics"
	"github.com/danielhkuo/daily-fortune/models"
)

// AdminService exposes the full visit list behind a shared secret
type AdminService struct {
	store  VisitStore
	secret string
}

func NewAdminService(store VisitStore, secret string) *AdminService {
	return &AdminService{store: store, secret: secret}
}

// ListVisits returns every stored visit, newest first. A wrong secret
// returns ErrAccessDenied before the store is touched.
func (s *AdminService) ListVisits(ctx context.Context, suppliedSecret string) ([]models.VisitRecord, error) {
	if err := auth.ValidateAdminSecret(suppliedSecret, s.secret); err != nil {
		metrics.AdminRequests.WithLabelValues(metrics.OutcomeDenied).Inc()
		return nil, ErrAccessDenied
	}

	visits, err := s.store.ListVisits(ctx)
	if err != nil {
		metrics.AdminRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, &StorageError{Op: "list visits", Err: err}
	}
	if visits == nil {
		visits = []models.VisitRecord{}
	}

	metrics.AdminRequests.WithLabelValues(metrics.OutcomeGranted).Inc()
	return visits, nil
}
