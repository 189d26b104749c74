// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/yoshi128/feature-voting/cliparse"
	"github.com/yoshi128/feature-voting/db"
	"github.com/yoshi128/feature-voting/handlers"
	"github.com/yoshi128/feature-voting/middleware"
	"github.com/yoshi128/feature-voting/store"
)

// NewRouter returns the full API handler: routes wrapped in CORS.
// conn is shared by every request for the life of the process.
func NewRouter(conn *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	metrics := middleware.NewMetrics()

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(metrics.Instrument(h))
	}

	// Initialize handlers
	featureHandler := handlers.NewFeatureHandler(store.New(conn, db.Dialect(cfg.DatabaseType)), metrics)

	// Health check
	mux.HandleFunc("GET /health", handlers.Health)

	// Features
	mux.HandleFunc("GET /features", wrap(featureHandler.ListFeatures))
	mux.HandleFunc("POST /features", wrap(featureHandler.CreateFeature))
	mux.HandleFunc("POST /features/{feature_id}/upvote", wrap(featureHandler.UpvoteFeature))

	// Metrics
	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", handlers.Root)

	return middleware.CORS(cfg.CORSOrigins)(mux)
}
