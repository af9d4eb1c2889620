package provisioning

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/easycluster/internal/platform/azure"
)

// Metrics collects per-run provisioning metrics in a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	stepDuration *prometheus.HistogramVec
	ensureTotal  *prometheus.CounterVec
	clusterNodes *prometheus.GaugeVec
}

// NewMetrics creates a collector with its own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "easycluster",
				Name:      "step_duration_seconds",
				Help:      "Duration of provisioning steps in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14), // 100ms to ~27m
			},
			[]string{"step", "result"},
		),
		ensureTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "easycluster",
				Name:      "resource_ensure_total",
				Help:      "Total number of ensure operations by resource kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		clusterNodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "easycluster",
				Name:      "cluster_nodes",
				Help:      "Number of cluster nodes by state",
			},
			[]string{"state"},
		),
	}
	m.registry.MustRegister(m.stepDuration, m.ensureTotal, m.clusterNodes)
	return m
}

// Registry returns the registry holding the run's metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveStep records how long a step took and whether it failed.
func (m *Metrics) ObserveStep(step string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.stepDuration.WithLabelValues(step, result).Observe(d.Seconds())
}

// RecordOutcome counts a successful ensure operation.
func (m *Metrics) RecordOutcome(kind string, outcome Outcome) {
	if m == nil {
		return
	}
	m.ensureTotal.WithLabelValues(kind, outcome.String()).Inc()
}

// RecordFailure counts a failed ensure operation.
func (m *Metrics) RecordFailure(kind string) {
	if m == nil {
		return
	}
	m.ensureTotal.WithLabelValues(kind, "failed").Inc()
}

// SetClusterNodes publishes the node counts of the last observed cluster.
func (m *Metrics) SetClusterNodes(c *azure.Cluster) {
	if m == nil || c == nil {
		return
	}
	counts := c.NodeStateCounts
	m.clusterNodes.WithLabelValues("target").Set(float64(c.TargetNodeCount))
	m.clusterNodes.WithLabelValues("allocated").Set(float64(c.CurrentNodeCount))
	m.clusterNodes.WithLabelValues("idle").Set(float64(counts.Idle))
	m.clusterNodes.WithLabelValues("running").Set(float64(counts.Running))
	m.clusterNodes.WithLabelValues("preparing").Set(float64(counts.Preparing))
	m.clusterNodes.WithLabelValues("unusable").Set(float64(counts.Unusable))
	m.clusterNodes.WithLabelValues("leaving").Set(float64(counts.Leaving))
}

// WriteToTextfile writes all metrics in the node-exporter textfile format.
func (m *Metrics) WriteToTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
