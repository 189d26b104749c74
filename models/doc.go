// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateFeatureRequest: title, description (optional)

# Response Types

  - HealthResponse: ok
  - ErrorResponse: error, message

# Domain Types

  - Feature: id, title, description (null when absent), votes

Feature is both the row returned by the store and the JSON object returned
by every feature endpoint; votes is always computed, never stored.
*/
package models
