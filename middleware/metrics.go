// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for one server instance.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	featuresCreated prometheus.Counter
	votesCast       prometheus.Counter
}

// NewMetrics registers the collectors on a fresh registry, so several
// routers (as in tests) can coexist in one process.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feature_voting_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feature_voting_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		featuresCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feature_voting_features_created_total",
			Help: "Features created since start.",
		}),
		votesCast: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feature_voting_votes_cast_total",
			Help: "Upvotes recorded since start.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.featuresCreated,
		m.votesCast,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument records the count and latency of requests to next.
// The route label is the ServeMux pattern that matched.
func (m *Metrics) Instrument(next http.HandlerFunc) http.HandlerFunc {
	if m == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.code())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) FeatureCreated() {
	if m != nil {
		m.featuresCreated.Inc()
	}
}

func (m *Metrics) VoteCast() {
	if m != nil {
		m.votesCast.Inc()
	}
}
