// Package metrics collects build- and query-latency measurements for the
// k2tree package and the CLI built on it: Prometheus counters for
// cumulative operation counts, plus an HdrHistogram latency distribution
// per operation kind, mirroring pebble's split between its Prometheus
// wiring (wal.Metrics) and its HdrHistogram manifest-tool reporting.
package metrics

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/prometheus/client_golang/prometheus"
)

// Op identifies a kind of k2tree operation for latency tracking.
type Op int

const (
	OpBuild Op = iota
	OpQuery
	OpMutate
	numOps
)

func (o Op) String() string {
	switch o {
	case OpBuild:
		return "build"
	case OpQuery:
		return "query"
	case OpMutate:
		return "mutate"
	default:
		return "unknown"
	}
}

// maxLatencyNanos bounds the HdrHistogram's tracked range: one minute, far
// beyond any realistic single build/query/mutate call.
const maxLatencyNanos = int64(60 * time.Second)

// Registry holds the counters and latency histograms for every Op. The
// counters are registered on the prometheus.Registerer passed to New; the
// Registry does not keep a reference to it.
type Registry struct {
	Operations *prometheus.CounterVec
	Errors     *prometheus.CounterVec

	latencies [numOps]*hdrhistogram.Histogram
}

// New builds a Registry with fresh metrics, registered on reg.
func New(reg prometheus.Registerer) *Registry {
	r := &Registry{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "k2tree",
			Name:      "operations_total",
			Help:      "Count of k2tree operations performed, by kind.",
		}, []string{"op"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "k2tree",
			Name:      "errors_total",
			Help:      "Count of k2tree operations that returned an error, by kind.",
		}, []string{"op"}),
	}
	for i := range r.latencies {
		r.latencies[i] = hdrhistogram.New(0, maxLatencyNanos, 3)
	}
	reg.MustRegister(r.Operations, r.Errors)
	return r
}

// Observe records one call to op that took d and, if err != nil, counts it
// as a failure.
func (r *Registry) Observe(op Op, d time.Duration, err error) {
	r.Operations.WithLabelValues(op.String()).Inc()
	if err != nil {
		r.Errors.WithLabelValues(op.String()).Inc()
	}
	nanos := d.Nanoseconds()
	if nanos > maxLatencyNanos {
		nanos = maxLatencyNanos
	}
	_ = r.latencies[op].RecordValue(nanos)
}

// LatencyQuantile returns the q-th percentile (0-100) latency observed for
// op, as a time.Duration.
func (r *Registry) LatencyQuantile(op Op, q float64) time.Duration {
	return time.Duration(r.latencies[op].ValueAtQuantile(q))
}

// Mean returns the mean latency observed for op.
func (r *Registry) Mean(op Op) time.Duration {
	return time.Duration(r.latencies[op].Mean())
}

// Track is a convenience wrapper: call it via defer to time and record a
// single operation.
//
//	defer metrics.Track(reg, metrics.OpBuild, &err)()
func Track(r *Registry, op Op, err *error) func() {
	start := time.Now()
	return func() {
		r.Observe(op, time.Since(start), *err)
	}
}
