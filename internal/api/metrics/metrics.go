// Package metrics defines all custom Prometheus metrics for the admin
// console. It is the single source of truth for metric names, labels, and
// help strings. Collectors are registered with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin_console"

// GuardDeniedTotal counts session-guard denials.
// Label:
//   - reason: "unauthenticated" (no token) or "forbidden" (non-admin or
//     unverifiable token)
var GuardDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denied_total",
		Help:      "Total number of requests rejected by the session guard.",
	},
	[]string{"reason"},
)

// CollectionLoadsTotal counts collection loads by entity and result.
// Labels:
//   - entity: the managed collection ("category", "job", …)
//   - result: "ok" or "error"
var CollectionLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collection_loads_total",
		Help:      "Total number of collection loads, by entity and result.",
	},
	[]string{"entity", "result"},
)

// CollectionLoadDuration measures how long a full collection load takes,
// reference joins included.
var CollectionLoadDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "collection_load_duration_seconds",
		Help:      "Duration of collection loads against the backend API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity"},
)

// MutationsTotal counts mutation dispatches.
// Labels:
//   - entity: the managed collection
//   - op: "create", "update", "delete" or "status"
//   - result: "ok" or "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of mutation dispatches, by entity, operation and result.",
	},
	[]string{"entity", "op", "result"},
)

// LoginsTotal counts login attempts by result ("ok" or "error").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
