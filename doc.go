// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Feature Voting API server.

Users propose features and upvote them; GET /features returns every feature
ranked by vote count (ties go to the older feature). Votes are anonymous and
unlimited.

# Starting the Server

With no configuration the server listens on :3318 and stores data in
./feature_voting.db, creating the file and tables on first start:

	go run .

Or with flags:

	go run . -p 8000 -d /var/lib/features/votes.db

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): SQLite file or PostgreSQL URL (default: feature_voting.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CORS_ORIGINS (-cors-origins): allowed origins (default: *, development only)
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format)

A .env file in the working directory is read too.

# Architecture

  - handlers: HTTP request handlers (features, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - store: Feature and vote persistence, ranking query
  - models: Request/response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
