// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Opening

Open returns the process-wide connection pool for a dialect:

	conn, err := db.Open(db.DialectSQLite, "feature_voting.db")

SQLite is the default backend and is embedded (modernc.org/sqlite, no cgo).
Every SQLite connection enables foreign keys, WAL journaling, a 5s busy
timeout and immediate transaction locking. PostgreSQL (lib/pq) takes a
regular connection string.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
There are no migrations; changing the schema means editing an existing
database by hand or deleting the file.

# Tables

  - features: id, title, description (nullable)
  - votes: id, feature_id

# Relationships

	features 1──* votes

votes.feature_id uses ON DELETE CASCADE.

# Placeholders

Queries are written with ? placeholders; Dialect.Rebind converts them to
$1, $2, ... for PostgreSQL.
*/
package db
