// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "photobill"

var (
	// StoreMutations counts applied store mutations by operation.
	StoreMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "mutations_total",
		Help:      "Store mutations applied in memory, by operation.",
	}, []string{"operation"})

	// PersistWrites counts snapshot writes by result ("ok" or "error").
	PersistWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "persist",
		Name:      "writes_total",
		Help:      "Snapshot writes to durable storage, by result.",
	}, []string{"result"})

	// PersistSuperseded counts queued snapshots replaced by a newer one before being written.
	PersistSuperseded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "persist",
		Name:      "superseded_total",
		Help:      "Queued snapshots dropped because a newer snapshot replaced them.",
	})

	// PersistDuration observes snapshot write latency.
	PersistDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "persist",
		Name:      "write_duration_seconds",
		Help:      "Latency of snapshot writes.",
		Buckets:   prometheus.DefBuckets,
	})

	// RPCRequests counts handled RPCs by procedure and status code.
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "Handled RPCs by procedure and code.",
	}, []string{"procedure", "code"})
)
