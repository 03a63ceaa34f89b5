// Package metrics defines and registers all custom Prometheus metrics for the
// POS payments API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pos_payments"

// ── Charge metrics ────────────────────────────────────────────────────────────

// ChargesCreatedTotal counts charges the gateway accepted.
var ChargesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charges_created_total",
		Help:      "Total number of gateway charges created successfully.",
	},
)

// ChargeErrorsTotal counts charge attempts that failed.
// Label:
//   - reason: short description of the failure (e.g. "gateway")
var ChargeErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charge_errors_total",
		Help:      "Total number of charge attempts that failed.",
	},
	[]string{"reason"},
)

// ReconcileItemsSkippedTotal counts line items dropped during total
// reconciliation (unparseable, non-positive quantity, out-of-bound values).
var ReconcileItemsSkippedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_items_skipped_total",
		Help:      "Total number of invalid line items dropped by reconciliation.",
	},
)

// ── Scan-to-pay metrics ───────────────────────────────────────────────────────

// QRSessionsRegisteredTotal counts order_id → token sessions registered by
// phone-mode clients.
var QRSessionsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_sessions_registered_total",
		Help:      "Total number of scan-to-pay sessions registered.",
	},
)

// QRSessionsResolvedTotal counts sessions consumed by the gateway finish
// callback (one-shot delete-on-deliver).
var QRSessionsResolvedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_sessions_resolved_total",
		Help:      "Total number of scan-to-pay sessions resolved via the gateway finish callback.",
	},
)

// QRStatusReportsTotal counts device-reported status writes.
// Label:
//   - status: the reported status ("pending", "success", "failed")
var QRStatusReportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_status_reports_total",
		Help:      "Total number of payment status reports pushed by devices.",
	},
	[]string{"status"},
)

// ── Throttle metrics ──────────────────────────────────────────────────────────

// RateLimitedTotal counts requests rejected by the throttle.
// Label:
//   - tier: "global" or "sensitive"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter, by tier.",
	},
	[]string{"tier"},
)
