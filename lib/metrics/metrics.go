package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReconcileTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_reconcile_total",
			Help: "Onboarding task reconciliation passes by outcome",
		},
		[]string{"outcome"},
	)

	ReconcileTasksWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_reconcile_tasks_total",
			Help: "Onboarding task records created or deleted by reconciliation",
		},
		[]string{"operation"},
	)

	StageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidate_stage_transitions_total",
			Help: "Candidate status changes by target status and result",
		},
		[]string{"status", "result"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidate_notifications_total",
			Help: "Candidate notifications by kind and result",
		},
		[]string{"kind", "result"},
	)
)
