// Package metrics defines and registers all custom Prometheus metrics for the
// hostel portal API. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered with the default registry
// at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hostel"

// SignInsTotal counts sign-in attempts by outcome.
// Label:
//   - result: "admitted" or "denied"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by gate outcome.",
	},
	[]string{"result"},
)

// ComplaintsCreatedTotal counts filed complaints.
// Label:
//   - category: the complaint category (e.g. "Bathroom", "Electricity")
var ComplaintsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_created_total",
		Help:      "Total number of complaints filed, by category.",
	},
	[]string{"category"},
)

// ComplaintStatusUpdatesTotal counts admin triage actions.
// Label:
//   - status: the status applied ("Pending", "In Progress", "Resolved")
var ComplaintStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaint_status_updates_total",
		Help:      "Total number of complaint status updates, by new status.",
	},
	[]string{"status"},
)

// ComplaintsDeletedTotal counts admin deletions.
var ComplaintsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_deleted_total",
		Help:      "Total number of complaints deleted by an admin.",
	},
)

// DuplicateSubmissionsTotal counts submissions blocked by the duplicate guard.
var DuplicateSubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_submissions_total",
		Help:      "Total number of complaint submissions rejected as near-term duplicates.",
	},
)

// CoolerUpsertsTotal counts recorded water-cooler readings.
var CoolerUpsertsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cooler_upserts_total",
		Help:      "Total number of water cooler readings recorded (create or update).",
	},
)
