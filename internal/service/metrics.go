package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "uniforms",
		Name:      "orders_finalized_total",
		Help:      "Orders written to the sales store.",
	})
	amountReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uniforms",
		Name:      "amount_received_total",
		Help:      "Money recorded against orders, by payment method.",
	}, []string{"method"})
	orderUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uniforms",
		Name:      "order_updates_total",
		Help:      "Post-sale updates applied to stored orders.",
	}, []string{"kind"})
	fabricMeters = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "uniforms",
		Name:      "fabric_received_meters_total",
		Help:      "Meters of fabric received from customers.",
	})
	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "uniforms",
		Name:      "event_publish_failures_total",
		Help:      "Sale events that could not be published.",
	})
	eventsMirrored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uniforms",
		Name:      "events_mirrored_total",
		Help:      "Sale events applied by the subscriber, by type.",
	}, []string{"type"})
)
