package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SnapshotLatency is the duration of snapshot operations.
	SnapshotLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "snapshots_operation_latency",
			Help: "Duration of snapshot operations",
		},
		[]string{"operation"},
	)

	// SnapshotTotalRequests is the total number of snapshot operations.
	SnapshotTotalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshots_operation_total_requests",
			Help: "Total number of snapshot operations",
		},
		[]string{"operation"},
	)
)
