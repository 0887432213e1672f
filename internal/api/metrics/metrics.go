// Package metrics defines all custom Prometheus metrics for the marketplace
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "invalid_password", or "blocked"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Vendor metrics ────────────────────────────────────────────────────────────

// VendorApprovalsTotal counts admin approvals, including idempotent repeats.
var VendorApprovalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_approvals_total",
		Help:      "Total number of vendor approval operations.",
	},
)

// VendorBlocksTotal counts vendor active-flag flips.
// Label:
//   - action: "block" or "unblock"
var VendorBlocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_blocks_total",
		Help:      "Total number of vendor block/unblock operations.",
	},
	[]string{"action"},
)

// ── Analytics metrics ─────────────────────────────────────────────────────────

// AnalyticsEventsTotal counts events that completed processing successfully.
// Label:
//   - type: the event type ("page_view", "product_view", ...)
var AnalyticsEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_events_total",
		Help:      "Total number of analytics events successfully processed.",
	},
	[]string{"type"},
)

// AnalyticsErrorsTotal counts events that failed processing.
// Label:
//   - reason: short description of the failure ("invalid_type", "insert_failed")
var AnalyticsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_errors_total",
		Help:      "Total number of analytics events that failed processing.",
	},
	[]string{"reason"},
)

// AnalyticsQueueDepth tracks the events waiting in each dispatcher worker
// channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var AnalyticsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "analytics_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
