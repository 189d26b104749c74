// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input   string
		want    Dialect
		wantErr bool
	}{
		{"sqlite", DialectSQLite, false},
		{"SQLite", DialectSQLite, false},
		{" postgres ", DialectPostgres, false},
		{"mysql", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDialect(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownDialect))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRebind(t *testing.T) {
	query := "SELECT id FROM features WHERE id = ? AND title = ?"

	assert.Equal(t, query, DialectSQLite.Rebind(query))
	assert.Equal(t,
		"SELECT id FROM features WHERE id = $1 AND title = $2",
		DialectPostgres.Rebind(query))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t,
		"data.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate",
		sqliteDSN("./data.db"))
	assert.Equal(t,
		"file:x.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate",
		sqliteDSN("file:x.db?mode=rwc"))
}

func TestOpenRequiresURL(t *testing.T) {
	_, err := Open(DialectSQLite, "  ")
	require.Error(t, err)
}

func TestOpenRejectsUnknownDialect(t *testing.T) {
	_, err := Open(Dialect("oracle"), "x.db")
	require.ErrorIs(t, err, ErrUnknownDialect)
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := Open(DialectSQLite, filepath.Join(t.TempDir(), "schema.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, CreateSchema(conn, DialectSQLite))
	require.NoError(t, CreateSchema(conn, DialectSQLite))

	for _, table := range []string{"features", "votes"} {
		var name string
		err := conn.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestCreateSchemaUnknownDialect(t *testing.T) {
	conn, err := Open(DialectSQLite, filepath.Join(t.TempDir(), "schema.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.ErrorIs(t, CreateSchema(conn, Dialect("oracle")), ErrUnknownDialect)
}

func TestForeignKeysEnforced(t *testing.T) {
	conn, err := Open(DialectSQLite, filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, CreateSchema(conn, DialectSQLite))

	_, err = conn.Exec("INSERT INTO votes (feature_id) VALUES (?)", 42)
	require.Error(t, err, "vote for a missing feature must violate the foreign key")
}

func TestDeleteFeatureCascadesVotes(t *testing.T) {
	conn, err := Open(DialectSQLite, filepath.Join(t.TempDir(), "cascade.db"))
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, CreateSchema(conn, DialectSQLite))

	var id int64
	require.NoError(t, conn.QueryRow(
		"INSERT INTO features (title) VALUES (?) RETURNING id", "Dark mode",
	).Scan(&id))
	for i := 0; i < 3; i++ {
		_, err := conn.Exec("INSERT INTO votes (feature_id) VALUES (?)", id)
		require.NoError(t, err)
	}

	_, err = conn.Exec("DELETE FROM features WHERE id = ?", id)
	require.NoError(t, err)

	var remaining int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM votes").Scan(&remaining))
	assert.Equal(t, 0, remaining)
}
