// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Feature Voting API.

# Handler Types

FeatureHandler holds the feature store and the metrics recorder:

	featureHandler := handlers.NewFeatureHandler(store.New(conn, dialect), metrics)

Health and Root are plain functions with no dependencies.

# Endpoints

	GET  /features                      - ListFeatures
	POST /features                      - CreateFeature
	POST /features/{feature_id}/upvote  - UpvoteFeature
	GET  /health                        - Health
	GET  /                              - Root

# Responses

Features are returned as models.Feature:

	{"id": 1, "title": "Dark mode", "description": null, "votes": 3}

Errors use models.ErrorResponse:

	{"error": "Not Found", "message": "Feature not found"}

# Status Codes

  - 200: list, upvote, health
  - 201: feature created
  - 400: body is not valid JSON for the request type
  - 404: upvote on a feature that does not exist
  - 422: missing or blank title, non-integer feature_id
  - 500: database failure (logged with the request ID)
*/
package handlers
