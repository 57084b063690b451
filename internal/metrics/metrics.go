package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "live_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	cartOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_cart_operations_total",
			Help: "Cart mutations by operation",
		},
		[]string{"operation"},
	)

	checkouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_checkouts_total",
			Help: "Checkout attempts by outcome",
		},
		[]string{"status"},
	)

	ticketsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "live_tickets_issued_total",
			Help: "Purchased ticket records created",
		},
	)

	revenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "live_revenue_dollars_total",
			Help: "Checkout totals charged",
		},
	)

	catalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "live_catalog_events",
			Help: "Events in the generated catalog",
		},
	)

	storeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_store_errors_total",
			Help: "Persistence failures by operation",
		},
		[]string{"operation"},
	)
)

func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func TrackCartOperation(operation string) {
	cartOperations.WithLabelValues(operation).Inc()
}

func TrackCheckout(status string, tickets int, total float64) {
	checkouts.WithLabelValues(status).Inc()
	if status != "success" {
		return
	}
	ticketsIssued.Add(float64(tickets))
	revenue.Add(total)
}

func SetCatalogSize(n int) {
	catalogSize.Set(float64(n))
}

func TrackStoreError(operation string) {
	storeErrors.WithLabelValues(operation).Inc()
}
