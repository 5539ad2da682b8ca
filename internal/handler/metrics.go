package handler

import (
	"errors"

	"github.com/ecomkit/order-lifecycle/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_lifecycle",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_processed_total",
			Help:      "Total number of successfully processed checkout events",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_lifecycle",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout event handling attempts",
		},
	)

	checkoutsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_lifecycle",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkout events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_lifecycle",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var transitionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "order_lifecycle",
		Subsystem: "commands",
		Name:      "transitions_total",
		Help:      "Total number of transition commands by command and outcome",
	},
	[]string{"command", "outcome"},
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsProcessed,
		checkoutsFailed,
		checkoutsDLQ,
		commitErrors,

		transitionsTotal,
	)
}

func observeTransition(cmd entities.Command, err error) {
	var invalid *entities.InvalidTransitionError

	outcome := "success"
	switch {
	case err == nil:
	case errors.As(err, &invalid):
		outcome = "rejected"
	case errors.Is(err, entities.ErrOrderConflict):
		outcome = "conflict"
	case errors.Is(err, entities.ErrForbidden):
		outcome = "forbidden"
	default:
		outcome = "error"
	}

	transitionsTotal.WithLabelValues(cmd.String(), outcome).Inc()
}
