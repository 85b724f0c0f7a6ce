// Package metrics holds the Prometheus collectors of the logistics core.
// Collectors register with the default registry on import and are served on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "logistics"

var (
	// StatusTransitions counts committed operation status changes.
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Committed operation status transitions",
		},
		[]string{"from", "to"},
	)

	// MovementsAppended counts committed ledger entries.
	MovementsAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_appended_total",
			Help:      "Committed movements by type and category",
		},
		[]string{"type", "category"},
	)

	// PersistenceConflicts counts writes that lost a concurrency race.
	PersistenceConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_conflicts_total",
			Help:      "Writes rejected by row locks, serialization failures or version checks",
		},
		[]string{"reason"},
	)

	// DelayReportRuns counts scheduled delay report runs by outcome.
	DelayReportRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delay_report_runs_total",
			Help:      "Scheduled delay report runs",
		},
		[]string{"result"},
	)
)
