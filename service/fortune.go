// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/daily-fortune/auth"
	"github.com/danielhkuo/daily-fortune/civil"
	"github.com/danielhkuo/daily-fortune/db"
	"github.com/danielhkuo/daily-fortune/fortune"
	"github.com/danielhkuo/daily-fortune/identity"
	"github.com/danielhkuo/daily-fortune/metrics"
	"github.com/danielhkuo/daily-fortune/models"
)

// MaxDeviceIDLength bounds the client-declared identifier
const MaxDeviceIDLength = 128

// VisitStore is the storage contract the service needs.
// InsertVisit must return db.ErrDuplicate when (device id, date) exists;
// FindVisit returns db.ErrNotFound when nothing matches.
type VisitStore interface {
	FindVisit(ctx context.Context, date string, c identity.Criteria) (models.VisitRecord, error)
	InsertVisit(ctx context.Context, rec models.VisitRecord) error
	ListVisits(ctx context.Context) ([]models.VisitRecord, error)
}

// Result of a fortune request
type Result struct {
	Message   string
	IsRevisit bool
	Visit     models.VisitRecord
}

// FortuneService assigns at most one fortune per visitor per civil day
type FortuneService struct {
	store   VisitStore
	pool    *fortune.Pool
	matcher identity.Matcher
	loc     *time.Location
}

func NewFortuneService(store VisitStore, pool *fortune.Pool, matcher identity.Matcher, loc *time.Location) *FortuneService {
	if matcher == nil {
		matcher = identity.DeviceMatcher{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &FortuneService{store: store, pool: pool, matcher: matcher, loc: loc}
}

// RequestFortune returns today's fortune for the visitor, assigning one on
// the first request of the day
func (s *FortuneService) RequestFortune(ctx context.Context, sig identity.Signal, now time.Time) (Result, error) {
	if sig.DeviceID == "" {
		metrics.FortuneRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return Result{}, fmt.Errorf("%w: device id is required", ErrValidation)
	}
	if len(sig.DeviceID) > MaxDeviceIDLength {
		metrics.FortuneRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return Result{}, fmt.Errorf("%w: limit is %d bytes", ErrDeviceIDTooLong, MaxDeviceIDLength)
	}

	today := civil.Date(now, s.loc)
	crit := s.matcher.Criteria(sig)

	existing, err := s.store.FindVisit(ctx, today, crit)
	if err == nil {
		slog.Info("revisit", "device", auth.RedactDeviceID(sig.DeviceID), "date", today)
		metrics.FortuneRequests.WithLabelValues(metrics.OutcomeRevisit).Inc()
		return Result{Message: existing.Fortune, IsRevisit: true, Visit: existing}, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		metrics.FortuneRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return Result{}, &StorageError{Op: "find visit", Err: err}
	}

	rec := models.VisitRecord{
		ID:         uuid.NewString(),
		DeviceID:   sig.DeviceID,
		Date:       today,
		Fortune:    s.pool.Pick(),
		DeviceInfo: sig.DeviceInfo,
		IPAddress:  sig.IPAddress,
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}

	err = s.store.InsertVisit(ctx, rec)
	if errors.Is(err, db.ErrDuplicate) {
		return s.recoverLostRace(ctx, sig.DeviceID, today)
	}
	if err != nil {
		metrics.FortuneRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return Result{}, &StorageError{Op: "insert visit", Err: err}
	}

	slog.Info("new visit", "device", auth.RedactDeviceID(sig.DeviceID), "date", today, "device_info", sig.DeviceInfo)
	metrics.FortuneRequests.WithLabelValues(metrics.OutcomeNew).Inc()
	return Result{Message: rec.Fortune, Visit: rec}, nil
}

// recoverLostRace re-reads the record a concurrent request stored first.
// The conflict is always on (device id, date), so the lookup ignores the
// network part of the criteria.
func (s *FortuneService) recoverLostRace(ctx context.Context, deviceID, today string) (Result, error) {
	metrics.RaceRecoveries.Inc()

	winner, err := s.store.FindVisit(ctx, today, identity.Criteria{DeviceID: deviceID})
	if err != nil {
		metrics.FortuneRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return Result{}, &StorageError{Op: "re-read visit after conflict", Err: err}
	}

	slog.Info("concurrent first visit resolved", "device", auth.RedactDeviceID(deviceID), "date", today)
	metrics.FortuneRequests.WithLabelValues(metrics.OutcomeRevisit).Inc()
	return Result{Message: winner.Fortune, IsRevisit: true, Visit: winner}, nil
}
