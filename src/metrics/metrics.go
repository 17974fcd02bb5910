package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RosterOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Name:      "roster_operations_total",
			Help:      "Signup and unregister attempts by outcome",
		},
		[]string{"operation", "outcome"},
	)

	ActivitiesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mergington",
			Name:      "activities_loaded",
			Help:      "Number of activities loaded at startup",
		},
	)

	ActivitySourceFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Name:      "activity_source_fallbacks_total",
			Help:      "Times the built-in activities replaced an unusable source",
		},
		[]string{"source", "reason"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Name:      "roster_notifications_total",
			Help:      "Roster confirmation mails handled by the worker",
		},
		[]string{"operation", "status"},
	)
)

// RecordRosterOperation counts one signup/unregister attempt.
func RecordRosterOperation(operation, outcome string) {
	RosterOperations.WithLabelValues(operation, outcome).Inc()
}

// RecordFallback counts a switch to the built-in activities.
func RecordFallback(source, reason string) {
	ActivitySourceFallbacks.WithLabelValues(source, reason).Inc()
}
