// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/yoshi128/feature-voting/middleware"
	"github.com/yoshi128/feature-voting/models"
	"github.com/yoshi128/feature-voting/store"
)

type FeatureHandler struct {
	store   *store.Store
	metrics *middleware.Metrics
}

func NewFeatureHandler(features *store.Store, metrics *middleware.Metrics) *FeatureHandler {
	return &FeatureHandler{store: features, metrics: metrics}
}

// ListFeatures handles GET /features
// Returns every feature ranked by votes, most voted first
func (h *FeatureHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.store.ListRanked(r.Context())
	if err != nil {
		slog.Error("failed to list features", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, features)
}

// CreateFeature handles POST /features
func (h *FeatureHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeatureRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if strings.TrimSpace(req.Title) == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	feature, err := h.store.Create(r.Context(), req.Title, req.Description)
	if errors.Is(err, store.ErrInvalidFeature) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	if err != nil {
		slog.Error("failed to insert feature", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.metrics.FeatureCreated()
	slog.Info("feature created", "feature_id", feature.ID)

	middleware.JSONResponse(w, http.StatusCreated, feature)
}

// UpvoteFeature handles POST /features/{feature_id}/upvote
// Votes are anonymous; the same client may upvote any number of times
func (h *FeatureHandler) UpvoteFeature(w http.ResponseWriter, r *http.Request) {
	featureID, err := strconv.ParseInt(r.PathValue("feature_id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "feature_id must be an integer")
		return
	}

	feature, err := h.store.Upvote(r.Context(), featureID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Feature not found")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "feature_id", featureID, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.metrics.VoteCast()
	slog.Info("vote recorded", "feature_id", feature.ID, "votes", feature.Votes)

	middleware.JSONResponse(w, http.StatusOK, feature)
}
