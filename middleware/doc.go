// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /features", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request ID is taken from X-Request-ID when the
caller sends one, otherwise generated, and is echoed in the response header.
Handlers read it with RequestID(r.Context()).

# Metrics

	metrics := middleware.NewMetrics()
	mux.HandleFunc("GET /features", metrics.Instrument(handler))
	mux.Handle("GET /metrics", metrics.Handler())

Instrument counts requests by route pattern, method and status and records
latency. FeatureCreated and VoteCast bump the domain counters. A nil
*Metrics records nothing.

# CORS Middleware

Enable cross-origin requests:

	handler := middleware.CORS([]string{"*"})(mux)

"*" allows any origin. This is the development default and should be
narrowed to real origins before production. Preflight requests get 204 and
never reach the mux.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.CreateFeatureRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for the remote field in request logs.
*/
package middleware
