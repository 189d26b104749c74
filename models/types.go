// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// API identity reported on the root endpoint
const (
	APITitle   = "Feature Voting API"
	APIVersion = "1.0.0"
)

// Request types

// CreateFeatureRequest is the body of POST /features. A missing or null
// description is stored as NULL.
type CreateFeatureRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// Response types

type HealthResponse struct {
	OK bool `json:"ok"`
}

// Domain types

// Feature is a proposed feature together with its current vote count.
type Feature struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"` // null when absent
	Votes       int64   `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
