package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// PaymentInitiationsTotal counts Initiate attempts by result
	// (started, failed, rejected).
	PaymentInitiationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommgw",
			Subsystem: "payment",
			Name:      "initiations_total",
			Help:      "Total number of payment initiation attempts",
		},
		[]string{"result"},
	)

	// PaymentVerificationsTotal counts return-callback verifications by
	// result (ok, failed, unknown_transaction, missing_transaction).
	PaymentVerificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommgw",
			Subsystem: "payment",
			Name:      "verifications_total",
			Help:      "Total number of return-callback verifications",
		},
		[]string{"result"},
	)

	// PaymentSettlementsTotal counts settled orders, with replays counted
	// separately so duplicate callbacks stay visible.
	PaymentSettlementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommgw",
			Subsystem: "payment",
			Name:      "settlements_total",
			Help:      "Total number of order settlements",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		PaymentInitiationsTotal,
		PaymentVerificationsTotal,
		PaymentSettlementsTotal,
	)
}
