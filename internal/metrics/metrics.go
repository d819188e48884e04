// Package metrics holds the service's prometheus counters, exposed on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "survey_sessions_created_total",
		Help: "Number of survey sessions created.",
	})

	SubmissionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "survey_submissions_accepted_total",
		Help: "Number of survey responses accepted.",
	})

	SubmissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survey_submissions_rejected_total",
		Help: "Number of survey submissions rejected, by reason.",
	}, []string{"reason"})

	RaffleDraws = promauto.NewCounter(prometheus.CounterOpts{
		Name: "survey_raffle_draws_total",
		Help: "Number of raffle draws computed.",
	})
)
