// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package reaper deletes stale visit records under exactly one policy:
// none, ttl (records older than a fixed age whose civil day has ended) or
// midnight (records from any day other than today). Reap is idempotent and takes the current time as
// an argument so it can be driven synchronously; Start runs it on a cron
// schedule in the civil timezone.
package reaper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/danielhkuo/daily-fortune/civil"
	"github.com/danielhkuo/daily-fortune/cliparse"
	"github.com/danielhkuo/daily-fortune/metrics"
)

// Cron specs per policy
const (
	TTLSchedule      = "@every 15m"
	MidnightSchedule = "0 0 * * *"
)

// MinTTL is the shortest ttl accepted. A civil day can last 25 hours across
// a DST change; the today guard passed to DeleteExpired covers the extra hour.
const MinTTL = cliparse.MinRetention

// Store is the delete side of the visit store
type Store interface {
	DeleteExpired(ctx context.Context, cutoff time.Time, today string) (int64, error)
	DeleteOtherDates(ctx context.Context, date string) (int64, error)
}

type Reaper struct {
	store  Store
	policy string
	ttl    time.Duration
	loc    *time.Location
}

func New(store Store, policy string, ttl time.Duration, loc *time.Location) (*Reaper, error) {
	switch policy {
	case cliparse.ReapNone, cliparse.ReapMidnight:
	case cliparse.ReapTTL:
		if ttl < MinTTL {
			return nil, fmt.Errorf("ttl reap policy needs a retention of at least %s, got %s", MinTTL, ttl)
		}
	default:
		return nil, fmt.Errorf("unknown reap policy %q", policy)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Reaper{store: store, policy: policy, ttl: ttl, loc: loc}, nil
}

// Policy returns the reap policy name
func (r *Reaper) Policy() string { return r.policy }

// Schedule returns the cron spec for the policy, or "" for none
func (r *Reaper) Schedule() string {
	switch r.policy {
	case cliparse.ReapTTL:
		return TTLSchedule
	case cliparse.ReapMidnight:
		return MidnightSchedule
	}
	return ""
}

// Reap deletes the records the policy considers stale at now
func (r *Reaper) Reap(ctx context.Context, now time.Time) (int64, error) {
	var (
		n   int64
		err error
	)
	switch r.policy {
	case cliparse.ReapTTL:
		n, err = r.store.DeleteExpired(ctx, now.Add(-r.ttl), civil.Date(now, r.loc))
	case cliparse.ReapMidnight:
		n, err = r.store.DeleteOtherDates(ctx, civil.Date(now, r.loc))
	default:
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reap (%s): %w", r.policy, err)
	}

	metrics.VisitsReaped.WithLabelValues(r.policy).Add(float64(n))
	return n, nil
}

// Start schedules Reap and returns a function that stops the scheduler.
// With the none policy nothing is scheduled.
func (r *Reaper) Start() (stop func(), err error) {
	spec := r.Schedule()
	if spec == "" {
		return func() {}, nil
	}

	c := cron.New(cron.WithLocation(r.loc))
	_, err = c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := r.Reap(ctx, time.Now())
		if err != nil {
			slog.Error("reap failed", "policy", r.policy, "error", err)
			return
		}
		slog.Info("reaped visits", "policy", r.policy, "deleted", n)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule reaper: %w", err)
	}

	c.Start()
	slog.Info("reaper scheduled", "policy", r.policy, "schedule", spec, "timezone", r.loc.String())
	return func() { <-c.Stop().Done() }, nil
}
