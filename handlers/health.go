// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/yoshi128/feature-voting/middleware"
	"github.com/yoshi128/feature-voting/models"
)

// Health handles GET /health
// Always healthy; the database is not consulted
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{OK: true})
}

// Root handles GET /
func Root(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(models.APITitle + " v" + models.APIVersion))
}
