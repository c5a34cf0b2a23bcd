package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Component labels for FallbacksTotal.
const (
	ComponentClassifier = "classifier"
	ComponentRefund     = "refund"
	ComponentTicket     = "ticket"
	ComponentSolution   = "solution"
	ComponentChat       = "chat"
)

var (
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "support_router_queries_total",
		Help: "Queries answered, by route",
	}, []string{"route"})

	FallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "support_router_fallbacks_total",
		Help: "Fallback values substituted, by component and reason",
	}, []string{"component", "reason"})

	RouteLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "support_router_route_latency_seconds",
		Help:    "End-to-end latency of classify and dispatch",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	ExternalCallLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "support_router_external_call_latency_seconds",
		Help:    "Latency of helpdesk API calls",
		Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
	}, []string{"call", "outcome"})
)

// ObserveRoute records one answered query.
func ObserveRoute(route string, started time.Time) {
	QueriesTotal.WithLabelValues(route).Inc()
	RouteLatency.WithLabelValues(route).Observe(time.Since(started).Seconds())
}

// ObserveFallback records one substituted fallback value.
func ObserveFallback(component, reason string) {
	FallbacksTotal.WithLabelValues(component, reason).Inc()
}

// ObserveExternalCall records one helpdesk API call.
func ObserveExternalCall(call string, err error, started time.Time) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ExternalCallLatency.WithLabelValues(call, outcome).Observe(time.Since(started).Seconds())
}
