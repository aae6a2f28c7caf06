// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPC metrics
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastrip_rpc_requests_total",
			Help: "Total number of RPC calls",
		},
		[]string{"procedure", "code"},
	)

	RPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gastrip_rpc_request_duration_seconds",
			Help:    "RPC call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)

	// Assistant metrics
	AssistantRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastrip_assistant_requests_total",
			Help: "Total number of generative assistant calls",
		},
		[]string{"mode", "kind", "status"},
	)

	AssistantRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gastrip_assistant_request_duration_seconds",
			Help:    "Generative assistant call duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"mode"},
	)

	// Storage metrics
	StoreWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastrip_store_writes_total",
			Help: "Total number of local state writes",
		},
		[]string{"key", "status"},
	)
)

// RecordRPC records one RPC call.
func RecordRPC(procedure, code string, duration time.Duration) {
	RPCRequestsTotal.WithLabelValues(procedure, code).Inc()
	RPCRequestDuration.WithLabelValues(procedure).Observe(duration.Seconds())
}

// RecordAssistant records one assistant call. Mode is "helper" or "insights".
func RecordAssistant(mode, kind string, ok bool, duration time.Duration) {
	AssistantRequestsTotal.WithLabelValues(mode, kind, status(ok)).Inc()
	AssistantRequestDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordStoreWrite records one write of a local state key.
func RecordStoreWrite(key string, err error) {
	StoreWritesTotal.WithLabelValues(key, status(err == nil)).Inc()
}

func status(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
