// Package metrics exposes prometheus instrumentation for the bridge service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Registry struct {
	ConversionsTotal   *prometheus.CounterVec
	ConversionDuration *prometheus.HistogramVec
	GraphNodes         prometheus.Histogram
	GraphConnections   prometheus.Histogram
	HTTPRequestsTotal  *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)
	return &Registry{
		ConversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "neuroscope_conversions_total",
			Help: "Model conversions by traversal mode and outcome",
		}, []string{"mode", "status"}),
		ConversionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "neuroscope_conversion_duration_seconds",
			Help:    "Model conversion duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"mode"}),
		GraphNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "neuroscope_graph_nodes",
			Help:    "Node count of converted graphs",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		GraphConnections: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "neuroscope_graph_connections",
			Help:    "Connection count of converted graphs",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "neuroscope_http_requests_total",
			Help: "HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "neuroscope_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// RecordConversion records one model conversion attempt.
func (r *Registry) RecordConversion(mode, status string, duration time.Duration, nodes, connections int) {
	r.ConversionsTotal.WithLabelValues(mode, status).Inc()
	r.ConversionDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if status == "success" {
		r.GraphNodes.Observe(float64(nodes))
		r.GraphConnections.Observe(float64(connections))
	}
}

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
