// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus counters for the service and the
// handler that exposes them on GET /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values
const (
	OutcomeNew      = "new"
	OutcomeRevisit  = "revisit"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
	OutcomeGranted  = "granted"
	OutcomeDenied   = "denied"
)

var (
	FortuneRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daily_fortune",
		Name:      "fortune_requests_total",
		Help:      "Fortune requests by outcome (new, revisit, rejected, error).",
	}, []string{"outcome"})

	RaceRecoveries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "daily_fortune",
		Name:      "race_recoveries_total",
		Help:      "First visits that lost an insert race and re-read the stored fortune.",
	})

	AdminRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daily_fortune",
		Name:      "admin_requests_total",
		Help:      "Admin list requests by outcome (granted, denied, error).",
	}, []string{"outcome"})

	VisitsReaped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "daily_fortune",
		Name:      "visits_reaped_total",
		Help:      "Visit records deleted by the reaper, by policy.",
	}, []string{"policy"})
)

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
