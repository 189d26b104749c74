// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsInstrument(t *testing.T) {
	m := NewMetrics()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /features/{feature_id}/upvote", m.Instrument(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, http.StatusNotFound, "Feature not found")
	}))

	for i := 0; i < 2; i++ {
		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/features/9/upvote", nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues("POST /features/{feature_id}/upvote", "POST", "404"))
	assert.Equal(t, float64(2), got)
}

func TestMetricsInstrument_UnmatchedRoute(t *testing.T) {
	m := NewMetrics()
	handler := m.Instrument(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	handler(httptest.NewRecorder(), httptest.NewRequest("POST", "/features", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "POST", "201")))
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.FeatureCreated()
	m.VoteCast()
	m.VoteCast()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.featuresCreated))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.votesCast))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.FeatureCreated()
		m.VoteCast()
	})

	called := false
	m.Instrument(func(w http.ResponseWriter, r *http.Request) { called = true })(
		httptest.NewRecorder(), httptest.NewRequest("GET", "/features", nil))
	assert.True(t, called)
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.VoteCast()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "feature_voting_votes_cast_total 1"), body)
	assert.Contains(t, body, "go_goroutines")
}
