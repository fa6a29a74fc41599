// Package metrics owns the Prometheus collectors exported on /metrics.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	guardDecisions  *prometheus.CounterVec
	rankRequests    prometheus.Counter
	rankCandidates  prometheus.Histogram
	feedbackTotal   *prometheus.CounterVec
	degradedLookups *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "org_guard_decisions_total",
			Help: "Organisation role guard decisions by outcome and reason.",
		}, []string{"outcome", "reason"}),
		rankRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matching_rank_requests_total",
			Help: "Rank requests served.",
		}),
		rankCandidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "matching_rank_candidates",
			Help:    "Number of candidates per rank request.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		feedbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matching_feedback_total",
			Help: "Feedback submissions by whether the record was persisted.",
		}, []string{"persisted"}),
		degradedLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matching_degraded_operations_total",
			Help: "Best-effort persistence calls that failed and were swallowed.",
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.guardDecisions,
		m.rankRequests,
		m.rankCandidates,
		m.feedbackTotal,
		m.degradedLookups,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RequestStarted() {
	if m == nil {
		return
	}
	m.httpInFlight.Inc()
}

func (m *Metrics) RequestFinished(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.httpInFlight.Dec()
	m.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(d.Seconds())
}

// GuardDecision records an allow ("" reason) or a deny with its reason code.
func (m *Metrics) GuardDecision(allowed bool, reason string) {
	if m == nil {
		return
	}
	outcome := "deny"
	if allowed {
		outcome = "allow"
		reason = "none"
	}
	m.guardDecisions.WithLabelValues(outcome, reason).Inc()
}

func (m *Metrics) RankServed(candidates int) {
	if m == nil {
		return
	}
	m.rankRequests.Inc()
	m.rankCandidates.Observe(float64(candidates))
}

func (m *Metrics) FeedbackAccepted(persisted bool) {
	if m == nil {
		return
	}
	m.feedbackTotal.WithLabelValues(strconv.FormatBool(persisted)).Inc()
}

func (m *Metrics) Degraded(operation string) {
	if m == nil {
		return
	}
	m.degradedLookups.WithLabelValues(operation).Inc()
}
