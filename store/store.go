// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/yoshi128/feature-voting/db"
	"github.com/yoshi128/feature-voting/models"
)

var (
	ErrNotFound       = errors.New("feature not found")
	ErrInvalidFeature = errors.New("title is required")
)

// Store reads and writes features and votes. It holds the process-wide
// pool; each call checks out its own connection and returns it before
// returning.
type Store struct {
	sqlDB   *sql.DB
	dialect db.Dialect
}

func New(sqlDB *sql.DB, dialect db.Dialect) *Store {
	return &Store{sqlDB: sqlDB, dialect: dialect}
}

// queryer is satisfied by both *sql.Conn and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const rankedQuery = `
	SELECT f.id, f.title, f.description, COUNT(v.id) AS votes
	FROM features f
	LEFT JOIN votes v ON v.feature_id = f.id
	GROUP BY f.id, f.title, f.description
	ORDER BY votes DESC, f.id ASC
`

const featureQuery = `
	SELECT f.id, f.title, f.description, COUNT(v.id) AS votes
	FROM features f
	LEFT JOIN votes v ON v.feature_id = f.id
	WHERE f.id = ?
	GROUP BY f.id, f.title, f.description
`

// ListRanked returns every feature ordered by vote count, highest first.
// Features with equal counts keep creation order (lower id first).
func (s *Store) ListRanked(ctx context.Context) ([]models.Feature, error) {
	features := []models.Feature{}

	err := s.withSession(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, rankedQuery)
		if err != nil {
			return fmt.Errorf("query features: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var f models.Feature
			if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Votes); err != nil {
				return fmt.Errorf("scan feature: %w", err)
			}
			features = append(features, f)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return features, nil
}

// Create inserts a feature and returns it with zero votes. Titles are not
// unique.
func (s *Store) Create(ctx context.Context, title string, description *string) (models.Feature, error) {
	if strings.TrimSpace(title) == "" {
		return models.Feature{}, ErrInvalidFeature
	}

	feature := models.Feature{Title: title, Description: description}
	err := s.withSession(ctx, func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx,
			s.dialect.Rebind(`INSERT INTO features (title, description) VALUES (?, ?) RETURNING id`),
			title, description,
		).Scan(&feature.ID)
		if err != nil {
			return fmt.Errorf("insert feature: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Feature{}, err
	}

	return feature, nil
}

// Get returns one feature with its current vote count.
func (s *Store) Get(ctx context.Context, id int64) (models.Feature, error) {
	var feature models.Feature
	err := s.withSession(ctx, func(conn *sql.Conn) error {
		var err error
		feature, err = s.getFeature(ctx, conn, id)
		return err
	})
	return feature, err
}

// Upvote records one vote for the feature and returns the feature with
// the recounted total. Votes are anonymous and never deduplicated.
func (s *Store) Upvote(ctx context.Context, id int64) (models.Feature, error) {
	var feature models.Feature
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		// Inserts nothing when the feature does not exist.
		res, err := tx.ExecContext(ctx,
			s.dialect.Rebind(`INSERT INTO votes (feature_id) SELECT id FROM features WHERE id = ?`),
			id,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrNotFound
			}
			return fmt.Errorf("insert vote: %w", err)
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("insert vote: %w", err)
		}
		if inserted == 0 {
			return ErrNotFound
		}

		feature, err = s.getFeature(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Feature{}, err
	}

	return feature, nil
}

func (s *Store) getFeature(ctx context.Context, q queryer, id int64) (models.Feature, error) {
	var f models.Feature
	err := q.QueryRowContext(ctx, s.dialect.Rebind(featureQuery), id).
		Scan(&f.ID, &f.Title, &f.Description, &f.Votes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Feature{}, ErrNotFound
	}
	if err != nil {
		return models.Feature{}, fmt.Errorf("query feature %d: %w", id, err)
	}
	return f, nil
}

// withSession runs fn on a connection held for the duration of the call.
// The connection goes back to the pool on every return path.
func (s *Store) withSession(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire session: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// withTx runs fn in a transaction on its own session. The transaction is
// rolled back unless fn returns nil and the commit succeeds.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return s.withSession(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "foreign_key_violation"
	}
	return false
}
