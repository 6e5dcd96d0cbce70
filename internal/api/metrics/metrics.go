// Package metrics defines and registers all custom Prometheus metrics for
// the portal API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts password sign-in attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of password sign-in attempts, by result.",
	},
	[]string{"result"},
)

// DashboardLoadsTotal counts dashboard aggregate loads.
// Label:
//   - view: terminal view state ("ADMIN_VIEW", "CLIENT_VIEW", "CLIENT_VIEW_EMPTY")
var DashboardLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_loads_total",
		Help:      "Total number of dashboard loads, by resolved view state.",
	},
	[]string{"view"},
)

// DashboardLoadDuration measures how long a dashboard aggregate takes to
// materialize end-to-end.
var DashboardLoadDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_load_duration_seconds",
		Help:      "Duration of dashboard aggregation from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ProjectsCreatedTotal counts projects created through the admin pathway.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created by administrators.",
	},
)

// LeadsTotal counts one-shot marketing submissions.
// Label:
//   - kind: "booking" or "contact_message"
var LeadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_total",
		Help:      "Total number of marketing submissions received, by kind.",
	},
	[]string{"kind"},
)
