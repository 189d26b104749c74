// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Feature Voting API.

# Route Registration

NewRouter creates the complete handler with all endpoints:

	handler := router.NewRouter(conn, cfg)

# Endpoints

Health:

	GET /health

Features:

	GET  /features                     - Ranked list
	POST /features                     - Create feature
	POST /features/{feature_id}/upvote - Add one vote

Operations:

	GET /metrics - Prometheus metrics
	GET /        - API name and version

# Middleware

Feature routes are wrapped with request logging and metrics. The whole mux
is wrapped in CORS using cfg.CORSOrigins, so preflight requests are
answered before routing.

# Handler Initialization

The router builds one store over the shared pool and one handler:

	featureHandler := handlers.NewFeatureHandler(store.New(conn, dialect), metrics)
*/
package router
