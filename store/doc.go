// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists features and votes and computes the ranking.

# Usage

	features := store.New(conn, db.DialectSQLite)

	f, err := features.Create(ctx, "Dark mode", nil)
	f, err = features.Upvote(ctx, f.ID)
	ranked, err := features.ListRanked(ctx)

# Sessions

Each operation checks out one connection from the pool, uses it, and
releases it before returning, including on error. Upvote additionally runs
inside a transaction that is rolled back unless it commits.

# Ranking

ListRanked counts votes with a LEFT JOIN (features without votes count 0)
and orders by votes descending, then id ascending.

# Errors

  - ErrNotFound: Get or Upvote on an id with no feature
  - ErrInvalidFeature: Create with a blank title

Other errors come from the database and are wrapped with context.
*/
package store
