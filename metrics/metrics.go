package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Checkout flow counters, exposed on /metrics.
var (
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_sessions_started_total",
		Help: "Checkout sessions created.",
	})
	GuestSubmits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_guest_submits_total",
		Help: "Successful guest-info submissions.",
	})
	PaymentsSucceeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_payments_succeeded_total",
		Help: "Payments that settled and produced a confirmation.",
	})
	PaymentsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_payments_failed_total",
		Help: "Payment submissions that failed settlement.",
	})
	HoldsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_holds_expired_total",
		Help: "Price holds that expired while on the payment step.",
	})
	HoldsExtended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_holds_extended_total",
		Help: "Price holds extended by the guest.",
	})
	SessionsAbandoned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_sessions_abandoned_total",
		Help: "Sessions abandoned explicitly by the guest.",
	})
	SessionsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_sessions_swept_total",
		Help: "Idle sessions removed by the background sweeper.",
	})
)
